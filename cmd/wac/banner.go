package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// printPairingInstructions prints the QR code (or only the payload) and
// where to scan it on the device.
func printPairingInstructions(w io.Writer, payload, qr string, code fmt.Stringer) {
	out := termenv.NewOutput(w)

	title := out.String("Scan to pair").Bold().Foreground(out.Color("#a78bfa"))
	hint := out.String("Developer options > Wireless debugging > Pair device with QR code").Faint()

	fmt.Fprintln(w, title)
	if qr != "" {
		fmt.Fprintln(w, qr)
	}
	fmt.Fprintf(w, "Payload: %s\n", payload)
	fmt.Fprintf(w, "Code:    %s\n", code)
	fmt.Fprintln(w, hint)
	fmt.Fprintln(w)
}

func printConnected(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("Device connected.").Bold().Foreground(out.Color("#4ade80")))
}
