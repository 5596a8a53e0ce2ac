package discovery

import (
	"context"
	"time"
)

// Discovery provides snapshots of the two ADB wireless debugging streams.
//
// Implementations receive announcements in the background; the snapshot
// methods must be safe to call concurrently with that work. Repeated
// snapshots may return the same records again.
type Discovery interface {
	// Start begins browsing both service types.
	Start(ctx context.Context) error

	// Stop ends browsing and releases network resources.
	Stop() error

	// PairingServices returns all records seen on the pairing stream.
	PairingServices() RecordSet

	// ConnectServices returns all records seen on the connect stream.
	ConnectServices() RecordSet
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// StopTimeout bounds how long Stop waits for receivers to exit.
	// Default: 10 seconds.
	StopTimeout time.Duration
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Interface:   "",
		StopTimeout: DefaultStopTimeout,
	}
}
