package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
	"github.com/wifi-android-connect/wac-go/pkg/metrics"
	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

// Reasons reported for records the engine does not act on.
const (
	reasonNotLocal     = "domain is not local"
	reasonNameMismatch = "name does not match"
)

// Engine reconciles pairing and connect records into an authentication
// state. It is not safe for concurrent use.
type Engine struct {
	state        State
	expectedName string
	code         pairing.Code

	// knownAddress maps a device IP to the first connect address seen
	// for it. Entries are never removed.
	knownAddress map[string]string

	// ignored holds records already reported as ignored, so replays on
	// every poll do not flood the event log.
	ignored map[ignoredKey]struct{}

	logger   *slog.Logger
	recorder *log.Recorder
	metrics  *metrics.Metrics
}

type ignoredKey struct {
	stream discovery.Stream
	record discovery.ServiceRecord
}

// NewEngine creates an engine in StateUnpaired with an empty address cache.
//
// The code is not validated here; callers parse it with pairing.ParseCode
// or create it with pairing.GenerateCode.
func NewEngine(code pairing.Code, expectedName string) *Engine {
	return &Engine{
		state:        StateUnpaired,
		expectedName: expectedName,
		code:         code,
		knownAddress: make(map[string]string),
		ignored:      make(map[ignoredKey]struct{}),
		logger:       slog.Default().With("component", "auth"),
		recorder:     log.NewRecorder(nil),
	}
}

// SetLogger sets the structured logger.
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	e.logger = logger.With("component", "auth")
}

// SetRecorder sets the event recorder used for the authentication trace.
func (e *Engine) SetRecorder(recorder *log.Recorder) {
	if recorder == nil {
		recorder = log.NewRecorder(nil)
	}
	e.recorder = recorder
}

// SetMetrics sets the metrics sink. Nil disables metrics.
func (e *Engine) SetMetrics(m *metrics.Metrics) {
	e.metrics = m
	m.SetState(uint8(e.state))
}

// State returns the current authentication state.
func (e *Engine) State() State {
	return e.state
}

// IsConnected reports whether a session was established.
func (e *Engine) IsConnected() bool {
	return e.state == StateConnected
}

// ExpectedName returns the pairing name the engine matches against.
func (e *Engine) ExpectedName() string {
	return e.expectedName
}

// PairCode returns the pair code. It is only available while unpaired.
func (e *Engine) PairCode() (pairing.Code, bool) {
	if e.state != StateUnpaired {
		return 0, false
	}
	return e.code, true
}

// KnownAddress returns the cached connect address for ip.
func (e *Engine) KnownAddress(ip string) (string, bool) {
	addr, ok := e.knownAddress[ip]
	return addr, ok
}

// OnPair handles a record from the pairing stream.
//
// Only acts while unpaired, on local records whose name matches the
// expected name. On a successful pair the engine moves to StatePaired and,
// if a connect address for the same IP is already cached, connects to it
// right away.
func (e *Engine) OnPair(ctx context.Context, record discovery.ServiceRecord, client DeviceClient) {
	const stream = discovery.StreamPairing
	e.metrics.ObserveRecord(stream.String())

	if e.state != StateUnpaired {
		return
	}
	if !record.IsLocal() {
		e.ignore(stream, record, reasonNotLocal)
		return
	}
	if !namesMatch(record.Name, e.expectedName) {
		e.ignore(stream, record, reasonNameMismatch)
		return
	}

	e.recorder.Record(stream, record, "")
	if !e.pair(ctx, client, record.Address()) {
		return
	}
	e.transition(stream, StatePaired, "pair succeeded")

	cached, ok := e.knownAddress[record.IP]
	if !ok {
		return
	}
	if e.connect(ctx, stream, client, cached) {
		e.transition(stream, StateConnected, "connected to cached address")
	}
}

// OnConnect handles a record from the connect stream.
//
// The first record seen for an IP is cached and connected to regardless
// of the current state, since devices that already trust this host never
// show up on the pairing stream. While paired, every record is connected
// to.
func (e *Engine) OnConnect(ctx context.Context, record discovery.ServiceRecord, client DeviceClient) {
	const stream = discovery.StreamConnect
	e.metrics.ObserveRecord(stream.String())

	if !record.IsLocal() {
		e.ignore(stream, record, reasonNotLocal)
		return
	}

	if _, seen := e.knownAddress[record.IP]; !seen {
		e.knownAddress[record.IP] = record.Address()
		e.recorder.Record(stream, record, "")
		if e.connect(ctx, stream, client, record.Address()) {
			e.transition(stream, StateConnected, "connect succeeded")
		}
	}

	if e.state == StatePaired {
		if e.connect(ctx, stream, client, record.Address()) {
			e.transition(stream, StateConnected, "connect after pairing succeeded")
		}
	}
}

func (e *Engine) pair(ctx context.Context, client DeviceClient, address string) bool {
	start := time.Now()
	err := client.Pair(ctx, address, e.code)
	e.recorder.Action(discovery.StreamPairing, log.ActionPair, address, err, time.Since(start))
	e.metrics.ObservePair(err == nil)

	if err != nil {
		e.logger.Warn("pair failed", "address", address, "error", err)
		return false
	}
	e.logger.Info("paired", "address", address)
	return true
}

func (e *Engine) connect(ctx context.Context, stream discovery.Stream, client DeviceClient, address string) bool {
	start := time.Now()
	err := client.Connect(ctx, address)
	e.recorder.Action(stream, log.ActionConnect, address, err, time.Since(start))
	e.metrics.ObserveConnect(err == nil)

	if err != nil {
		e.logger.Warn("connect failed", "address", address, "stream", stream, "error", err)
		return false
	}
	e.logger.Info("connected", "address", address)
	return true
}

// transition moves the engine to next. Transitions that would not move
// the state forward are dropped.
func (e *Engine) transition(stream discovery.Stream, next State, reason string) {
	if next <= e.state {
		return
	}
	prev := e.state
	e.state = next

	e.logger.Info("authentication state changed", "from", prev, "to", next, "reason", reason)
	e.recorder.StateChange(stream, prev.String(), next.String(), reason)
	e.metrics.SetState(uint8(next))
}

func (e *Engine) ignore(stream discovery.Stream, record discovery.ServiceRecord, reason string) {
	key := ignoredKey{stream: stream, record: record}
	if _, done := e.ignored[key]; done {
		return
	}
	e.ignored[key] = struct{}{}

	e.logger.Debug("ignoring record", "stream", stream, "name", record.Name, "address", record.Address(), "reason", reason)
	e.recorder.Record(stream, record, reason)
}

// namesMatch reports whether either name contains the other. Discovered
// names carry the service type suffix, so an exact comparison never hits.
func namesMatch(discovered, expected string) bool {
	return strings.Contains(discovered, expected) || strings.Contains(expected, discovered)
}
