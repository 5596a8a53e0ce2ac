package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/wifi-android-connect/wac-go/internal/config"
	"github.com/wifi-android-connect/wac-go/pkg/adb"
	"github.com/wifi-android-connect/wac-go/pkg/connector"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
	"github.com/wifi-android-connect/wac-go/pkg/metrics"
)

func runConnect(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	code, err := cfg.Code()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	events, closeEvents, err := openEventLog(cfg, logger, opts.verbose)
	if err != nil {
		return err
	}
	defer closeEvents()

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		if m, err = metrics.New(reg); err != nil {
			return err
		}
		srv, err := startMetricsServer(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	c, err := connector.NewWithConfig(connector.Config{
		Name: cfg.PairName,
		Code: code,
		Browser: discovery.BrowserConfig{
			Interface: cfg.Interface,
		},
		ADB: adb.Config{
			ServerAddr: cfg.ADBServer,
		},
		Loop: connector.LoopConfig{
			PollInterval: cfg.PollInterval,
		},
		EventLogger: events,
		Metrics:     m,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	payload, err := c.Payload()
	if err != nil {
		return err
	}
	var qr string
	if !cfg.NoQR && isTerminal(out) {
		if qr, err = c.QRCode(); err != nil {
			return err
		}
	}
	printPairingInstructions(out, payload, qr, code)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := c.Run(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("no device connected within %s: %w", cfg.Timeout, err)
		}
		return err
	}

	printConnected(out)
	return nil
}

// openEventLog builds the authentication trace sink: the event log file
// when configured, plus the slog adapter at -vv and above.
func openEventLog(cfg config.Config, logger *slog.Logger, verbosity int) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open event log: %w", err)
		}
		loggers = append(loggers, fl)
		closeFn = func() { _ = fl.Close() }
	}
	if verbosity >= 2 {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	if len(loggers) == 0 {
		return log.NoopLogger{}, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}
