// Package config loads the wac configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// WAC_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/wifi-android-connect/wac-go/pkg/adb"
	"github.com/wifi-android-connect/wac-go/pkg/connector"
	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

// Validation errors.
var (
	ErrEmptyPairName       = errors.New("pair name must not be empty")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
	ErrInvalidTimeout      = errors.New("timeout must not be negative")
	ErrInvalidADBServer    = errors.New("adb server must be host:port")
)

// Config holds the settings for one wac run.
type Config struct {
	// PairName is encoded in the QR code and matched against pairing
	// records.
	PairName string `yaml:"pair_name" env:"WAC_PAIR_NAME"`

	// PairCode is the 6 digit pair code. Empty means a random code.
	PairCode string `yaml:"pair_code" env:"WAC_PAIR_CODE"`

	// ADBServer is the ADB server address.
	ADBServer string `yaml:"adb_server" env:"WAC_ADB_SERVER"`

	// Interface restricts mDNS to one network interface. Empty means all.
	Interface string `yaml:"interface" env:"WAC_INTERFACE"`

	// PollInterval is the pause between reconciliation iterations.
	PollInterval time.Duration `yaml:"poll_interval" env:"WAC_POLL_INTERVAL"`

	// Timeout bounds the whole run. Zero waits forever.
	Timeout time.Duration `yaml:"timeout" env:"WAC_TIMEOUT"`

	// EventLog is a path for the CBOR authentication trace. Empty disables it.
	EventLog string `yaml:"event_log" env:"WAC_EVENT_LOG"`

	// MetricsAddr serves Prometheus metrics on this address during a run.
	MetricsAddr string `yaml:"metrics_addr" env:"WAC_METRICS_ADDR"`

	// NoQR prints only the payload text instead of the QR code.
	NoQR bool `yaml:"no_qr" env:"WAC_NO_QR"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		PairName:     connector.DefaultName,
		ADBServer:    adb.DefaultServerAddr,
		PollInterval: connector.DefaultPollInterval,
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays WAC_* environment variables onto cfg. Unset variables
// leave the current value alone.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("YAML parse error: %w", err)
	}
	return nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.PairName == "" {
		return ErrEmptyPairName
	}
	if c.PairCode != "" {
		if _, err := pairing.ParseCode(c.PairCode); err != nil {
			return err
		}
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, c.PollInterval)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	if _, _, err := net.SplitHostPort(c.ADBServer); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidADBServer, c.ADBServer)
	}
	return nil
}

// Code returns the configured pair code, or a random one when none is set.
func (c Config) Code() (pairing.Code, error) {
	if c.PairCode == "" {
		return pairing.GenerateCode()
	}
	return pairing.ParseCode(c.PairCode)
}
