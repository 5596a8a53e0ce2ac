package connector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wifi-android-connect/wac-go/pkg/adb"
	"github.com/wifi-android-connect/wac-go/pkg/auth"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
	"github.com/wifi-android-connect/wac-go/pkg/metrics"
	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

// DefaultName is the pairing name used by Default.
const DefaultName = "WIFI Android Connect"

// Config configures a Connector.
type Config struct {
	// Name is announced by the device on the pairing stream after the QR
	// code is scanned.
	Name string

	// Code is the pair code. It must be a valid 6 digit code.
	Code pairing.Code

	// Browser configures mDNS discovery.
	Browser discovery.BrowserConfig

	// ADB configures the ADB server client.
	ADB adb.Config

	// Loop configures the reconciliation loop.
	Loop LoopConfig

	// EventLogger receives the authentication trace. Optional.
	EventLogger log.Logger

	// Metrics collects engine and loop metrics. Optional.
	Metrics *metrics.Metrics

	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger
}

// Connector authorizes this host against one Android device.
type Connector struct {
	config Config

	newDiscovery func() discovery.Discovery
	client       auth.DeviceClient

	lastAttempt string
}

// Default creates a Connector with DefaultName and a random pair code.
func Default() (*Connector, error) {
	code, err := pairing.GenerateCode()
	if err != nil {
		return nil, err
	}
	return New(DefaultName, code)
}

// New creates a Connector for name and code with default collaborators.
func New(name string, code pairing.Code) (*Connector, error) {
	return NewWithConfig(Config{
		Name:    name,
		Code:    code,
		Browser: discovery.DefaultBrowserConfig(),
		ADB:     adb.DefaultConfig(),
		Loop:    DefaultLoopConfig(),
	})
}

// NewWithConfig creates a Connector from config.
func NewWithConfig(config Config) (*Connector, error) {
	if err := config.Code.Validate(); err != nil {
		return nil, err
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Loop.Logger == nil {
		config.Loop.Logger = config.Logger
	}
	if config.Loop.Metrics == nil {
		config.Loop.Metrics = config.Metrics
	}

	c := &Connector{config: config}
	c.newDiscovery = func() discovery.Discovery {
		return discovery.NewMDNSDiscovery(c.config.Browser, c.config.Logger)
	}
	c.client = adb.NewServerClient(config.ADB, config.Logger)
	return c, nil
}

// SetDiscoveryFactory replaces the discovery used by Run. The factory is
// called once per Run so every attempt starts with empty record sets.
func (c *Connector) SetDiscoveryFactory(factory func() discovery.Discovery) {
	c.newDiscovery = factory
}

// SetDeviceClient replaces the ADB client used by Run.
func (c *Connector) SetDeviceClient(client auth.DeviceClient) {
	c.client = client
}

// Name returns the pairing name.
func (c *Connector) Name() string {
	return c.config.Name
}

// Code returns the pair code.
func (c *Connector) Code() pairing.Code {
	return c.config.Code
}

// LastAttemptID returns the trace ID of the most recent Run.
func (c *Connector) LastAttemptID() string {
	return c.lastAttempt
}

// Payload returns the text encoded in the pairing QR code.
func (c *Connector) Payload() (string, error) {
	return pairing.EncodePayload(c.config.Name, c.config.Code)
}

// QRCode returns the pairing QR code rendered for a terminal.
func (c *Connector) QRCode() (string, error) {
	payload, err := c.Payload()
	if err != nil {
		return "", err
	}
	return pairing.RenderQRCode(payload)
}

// Run blocks until a device is connected, ctx is done or discovery fails.
// Each call uses a fresh engine and a fresh discovery.
func (c *Connector) Run(ctx context.Context) error {
	recorder := log.NewRecorder(c.config.EventLogger)
	c.lastAttempt = recorder.AttemptID()

	engine := auth.NewEngine(c.config.Code, c.config.Name)
	engine.SetLogger(c.config.Logger)
	engine.SetRecorder(recorder)
	engine.SetMetrics(c.config.Metrics)

	err := Reconcile(ctx, engine, c.newDiscovery(), c.client, c.config.Loop)
	if err != nil {
		recorder.Error("reconcile", err)
		return fmt.Errorf("attempt %s: %w", recorder.AttemptID(), err)
	}
	return nil
}
