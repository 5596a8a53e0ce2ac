package auth

import (
	"context"

	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

// DeviceClient performs the side-effecting device operations.
//
// Both calls return nil on success. Any error is treated as a transient
// failure by the Engine.
type DeviceClient interface {
	// Pair performs the pairing ceremony with the device at address
	// ("ip:port" taken from the pairing stream).
	Pair(ctx context.Context, address string, code pairing.Code) error

	// Connect opens a session with the device at address ("ip:port" taken
	// from the connect stream).
	Connect(ctx context.Context, address string) error
}
