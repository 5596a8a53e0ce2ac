package connector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/auth"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/metrics"
)

// DefaultPollInterval is the pause between loop iterations.
const DefaultPollInterval = 250 * time.Millisecond

// Loop errors. Both are fatal; per-record failures never end the loop.
var (
	ErrDiscoveryStart = errors.New("failed to start discovery")
	ErrDiscoveryStop  = errors.New("failed to stop discovery")
)

// LoopConfig configures Reconcile.
type LoopConfig struct {
	// PollInterval is the pause between iterations (default: 250ms).
	PollInterval time.Duration

	// Logger receives loop lifecycle messages (default: slog.Default()).
	Logger *slog.Logger

	// Metrics counts iterations. Optional.
	Metrics *metrics.Metrics
}

// DefaultLoopConfig returns the default loop configuration.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{PollInterval: DefaultPollInterval}
}

// Reconcile starts disc and feeds its records through engine until the
// engine reports a connection or ctx is done.
//
// It returns nil once connected, ctx.Err() when the context ends first,
// and an error wrapping ErrDiscoveryStart or ErrDiscoveryStop when
// discovery fails. disc is stopped on every path after a successful start.
func Reconcile(ctx context.Context, engine *auth.Engine, disc discovery.Discovery, client auth.DeviceClient, cfg LoopConfig) error {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "connector")

	if err := disc.Start(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDiscoveryStart, err)
	}
	logger.Info("discovery started", "poll_interval", cfg.PollInterval)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		connected := Step(ctx, engine, disc, client)
		cfg.Metrics.ObserveIteration()
		if connected {
			break
		}

		select {
		case <-ctx.Done():
			logger.Info("reconciliation cancelled", "state", engine.State(), "error", ctx.Err())
			if err := stopDiscovery(disc); err != nil {
				return errors.Join(ctx.Err(), err)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}

	logger.Info("device connected")
	return stopDiscovery(disc)
}

// Step runs one iteration: every pairing record through OnPair, then every
// connect record through OnConnect. It reports whether the engine is
// connected afterwards.
func Step(ctx context.Context, engine *auth.Engine, disc discovery.Discovery, client auth.DeviceClient) bool {
	pairingSet := disc.PairingServices()
	connectSet := disc.ConnectServices()

	for _, record := range pairingSet.Records() {
		engine.OnPair(ctx, record, client)
	}
	for _, record := range connectSet.Records() {
		engine.OnConnect(ctx, record, client)
	}
	return engine.IsConnected()
}

func stopDiscovery(disc discovery.Discovery) error {
	if err := disc.Stop(); err != nil {
		return fmt.Errorf("%w: %w", ErrDiscoveryStop, err)
	}
	return nil
}
