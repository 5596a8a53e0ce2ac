package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wifi-android-connect/wac-go/internal/config"
)

// options holds the flag values. Flags only override the configuration
// when set explicitly.
type options struct {
	configPath   string
	name         string
	code         string
	verbose      int
	noQR         bool
	timeout      time.Duration
	pollInterval time.Duration
	adbServer    string
	iface        string
	eventLog     string
	metricsAddr  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wac",
		Short: "Connect to an Android device over Wi-Fi",
		Long: `wac pairs and connects an Android device with wireless debugging enabled.

It prints a QR code for "Pair device with QR code" in the device's developer
options, then watches mDNS until the device announces itself and drives the
local ADB server to pair and connect.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&opts.name, "name", "n", "", "Pairing name shown in the QR code (default \"WIFI Android Connect\")")
	pf.StringVarP(&opts.code, "code", "c", "", "6 digit pair code (default: random)")
	pf.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv debug with source)")

	f := cmd.Flags()
	f.BoolVar(&opts.noQR, "no-qr", false, "Print only the pairing payload instead of the QR code")
	f.DurationVar(&opts.timeout, "timeout", 0, "Give up after this long (0 waits forever)")
	f.DurationVar(&opts.pollInterval, "poll-interval", 0, "Pause between discovery polls")
	f.StringVar(&opts.adbServer, "adb-server", "", "ADB server address")
	f.StringVar(&opts.iface, "interface", "", "Network interface for mDNS")
	f.StringVar(&opts.eventLog, "event-log", "", "Append the authentication trace to this file")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	cmd.AddCommand(newPayloadCmd(opts))
	cmd.AddCommand(newLogCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig loads the file and environment configuration and applies the
// flags that were set on cmd.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.PairName = opts.name
	}
	if flags.Changed("code") {
		cfg.PairCode = opts.code
	}
	if flags.Changed("no-qr") {
		cfg.NoQR = opts.noQR
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("poll-interval") {
		cfg.PollInterval = opts.pollInterval
	}
	if flags.Changed("adb-server") {
		cfg.ADBServer = opts.adbServer
	}
	if flags.Changed("interface") {
		cfg.Interface = opts.iface
	}
	if flags.Changed("event-log") {
		cfg.EventLog = opts.eventLog
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = opts.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
