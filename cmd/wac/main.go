// Command wac connects this host to an Android device over Wi-Fi.
//
// It prints a pairing QR code, waits for the device to show up on the
// network and then pairs and connects through the local ADB server.
//
// Usage:
//
//	wac [flags]
//	wac payload [flags]
//	wac log <view|stats|export> [flags] <file.wlog>
//
// Examples:
//
//	# Pair with a random code and connect
//	wac
//
//	# Fixed name and code, give up after two minutes
//	wac --name studio --code 765912 --timeout 2m
//
//	# Record the authentication trace and inspect it
//	wac --event-log wac.wlog
//	wac log view --category action wac.wlog
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
