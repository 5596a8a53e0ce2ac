package pairing

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// RenderQRCode renders payload as a QR code made of half-block characters
// for display in a terminal. Colors are inverted so the code scans on
// dark-background terminals.
func RenderQRCode(payload string) (string, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}
	return q.ToSmallString(true), nil
}
