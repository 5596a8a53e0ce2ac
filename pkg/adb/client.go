package adb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/auth"
	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

// DefaultServerAddr is where the ADB server listens by default.
const DefaultServerAddr = "127.0.0.1:5037"

// Client errors.
var (
	// ErrInvalidAddress indicates a device address that is not ip:port.
	ErrInvalidAddress = errors.New("invalid device address")

	// ErrRequestFailed indicates the server answered FAIL.
	ErrRequestFailed = errors.New("adb request failed")

	// ErrPairFailed indicates the device rejected the pairing.
	ErrPairFailed = errors.New("pairing failed")

	// ErrConnectFailed indicates the server could not connect to the device.
	ErrConnectFailed = errors.New("connect failed")
)

// Config configures a ServerClient.
type Config struct {
	// ServerAddr is the ADB server address (default: 127.0.0.1:5037).
	ServerAddr string

	// DialTimeout bounds connecting to the server (default: 5s).
	DialTimeout time.Duration

	// RequestTimeout bounds one request including the device round trip
	// (default: 30s). Pairing runs a key exchange with the device, so
	// this is much larger than DialTimeout.
	RequestTimeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		ServerAddr:     DefaultServerAddr,
		DialTimeout:    5 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// ServerClient talks to the ADB server over its host protocol.
type ServerClient struct {
	config Config
	logger *slog.Logger
}

// NewServerClient creates a client. Zero config fields take defaults.
func NewServerClient(config Config, logger *slog.Logger) *ServerClient {
	def := DefaultConfig()
	if config.ServerAddr == "" {
		config.ServerAddr = def.ServerAddr
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = def.DialTimeout
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = def.RequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ServerClient{
		config: config,
		logger: logger.With("component", "adb"),
	}
}

// Pair pairs with the device at address using code.
func (c *ServerClient) Pair(ctx context.Context, address string, code pairing.Code) error {
	if err := ValidateAddress(address); err != nil {
		return err
	}

	reply, err := c.request(ctx, fmt.Sprintf("host:pair:%s:%s", code, address))
	if err != nil {
		return err
	}
	if strings.HasPrefix(reply, "Failed") {
		return fmt.Errorf("%w: %s", ErrPairFailed, reply)
	}
	return nil
}

// Connect connects to the device at address. A device that is already
// connected counts as success.
func (c *ServerClient) Connect(ctx context.Context, address string) error {
	if err := ValidateAddress(address); err != nil {
		return err
	}

	reply, err := c.request(ctx, "host:connect:"+address)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(reply, "connected to") && !strings.HasPrefix(reply, "already connected to") {
		return fmt.Errorf("%w: %s", ErrConnectFailed, reply)
	}
	return nil
}

// request sends one host service request and returns the reply.
func (c *ServerClient) request(ctx context.Context, service string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	dialer := &net.Dialer{Timeout: c.config.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.config.ServerAddr)
	if err != nil {
		return "", fmt.Errorf("failed to reach adb server at %s: %w", c.config.ServerAddr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c.logger.Debug("adb request", "service", redact(service))

	if err := WriteMessage(conn, service); err != nil {
		return "", err
	}
	if err := ReadStatus(conn); err != nil {
		return "", err
	}
	reply, err := ReadMessage(conn)
	if err != nil {
		return "", err
	}

	c.logger.Debug("adb reply", "reply", reply)
	return reply, nil
}

// ValidateAddress checks that address is an ip:port pair with a port in
// 1..65535.
func ValidateAddress(address string) error {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidAddress, address, err)
	}
	if net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q: host is not an IP", ErrInvalidAddress, address)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil || p == 0 {
		return fmt.Errorf("%w: %q: bad port", ErrInvalidAddress, address)
	}
	return nil
}

// redact hides the pair code in a host:pair request.
func redact(service string) string {
	if !strings.HasPrefix(service, "host:pair:") {
		return service
	}
	rest := strings.TrimPrefix(service, "host:pair:")
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		return "host:pair:******" + rest[i:]
	}
	return service
}

var _ auth.DeviceClient = (*ServerClient)(nil)
