package pairing

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderQRCode(t *testing.T) {
	payload, err := EncodePayload("WIFI Android Connect", 123456)
	if err != nil {
		t.Fatalf("EncodePayload failed: %v", err)
	}

	qr, err := RenderQRCode(payload)
	if err != nil {
		t.Fatalf("RenderQRCode failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(qr, "\n"), "\n")
	if len(lines) < 10 {
		t.Fatalf("expected a multi-line rendering, got %d lines", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			t.Errorf("line %d has width %d, want %d", i, n, width)
		}
	}
	if !strings.ContainsAny(qr, "█▀▄") {
		t.Error("expected half-block characters in the rendering")
	}

	again, err := RenderQRCode(payload)
	if err != nil {
		t.Fatalf("RenderQRCode failed: %v", err)
	}
	if again != qr {
		t.Error("rendering is not deterministic")
	}
}

func TestRenderQRCodeTooLong(t *testing.T) {
	if _, err := RenderQRCode(strings.Repeat("x", 4000)); err == nil {
		t.Error("expected an error for a payload that does not fit a QR code")
	}
}
