package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wifi-android-connect/wac-go/pkg/auth"
	"github.com/wifi-android-connect/wac-go/pkg/auth/mocks"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
	"github.com/wifi-android-connect/wac-go/pkg/metrics"
	"github.com/wifi-android-connect/wac-go/pkg/pairing"
)

var errDevice = errors.New("device refused")

func pairingRecord(name, ip string, port uint16) discovery.ServiceRecord {
	return discovery.ServiceRecord{
		Name:   name + "." + discovery.ServiceTypePairing + ".local.",
		IP:     ip,
		Port:   port,
		Domain: discovery.Domain,
	}
}

func connectRecord(name, ip string, port uint16) discovery.ServiceRecord {
	return discovery.ServiceRecord{
		Name:   name + "." + discovery.ServiceTypeConnect + ".local.",
		IP:     ip,
		Port:   port,
		Domain: discovery.Domain,
	}
}

// eventLog collects trace events in memory.
type eventLog struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *eventLog) Log(e log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) byCategory(c log.Category) []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []log.Event
	for _, e := range l.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func TestNewEngine(t *testing.T) {
	e := auth.NewEngine(765912, "connectAndroid")

	assert.Equal(t, auth.StateUnpaired, e.State())
	assert.False(t, e.IsConnected())
	assert.Equal(t, "connectAndroid", e.ExpectedName())

	code, ok := e.PairCode()
	assert.True(t, ok)
	assert.Equal(t, pairing.Code(765912), code)
}

func TestOnConnectSuccessConnects(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)

	assert.True(t, e.IsConnected())
	addr, ok := e.KnownAddress("10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.2:40000", addr)
}

func TestOnConnectFailureStaysDisconnected(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(errDevice).Once()

	e := auth.NewEngine(10, "test")
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)

	assert.False(t, e.IsConnected())
	assert.Equal(t, auth.StateUnpaired, e.State())

	// The address stays cached, so a replay does not retry while unpaired.
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)
	client.AssertNumberOfCalls(t, "Connect", 1)
}

func TestPairUsesCachedConnectAddress(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)

	// Device is not trusted yet, so the first-sight connect fails.
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(errDevice).Once()
	client.EXPECT().Pair(mock.Anything, "10.0.0.2:37000", pairing.Code(10)).Return(nil).Once()
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.OnConnect(ctx, connectRecord("adb-R58M-unrelated", "10.0.0.2", 40000), client)
	require.Equal(t, auth.StateUnpaired, e.State())

	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)

	assert.True(t, e.IsConnected())
}

func TestPairThenConnect(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Pair(mock.Anything, "10.0.0.2:37000", pairing.Code(10)).Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)

	assert.Equal(t, auth.StatePaired, e.State())
	assert.False(t, e.IsConnected())

	_, ok := e.PairCode()
	assert.False(t, ok, "pair code is consumed once paired")

	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)

	assert.True(t, e.IsConnected())
}

func TestPairedRetriesConnectOnEveryRecord(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Pair(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)
	require.Equal(t, auth.StatePaired, e.State())

	// First sight: both the first-sight attempt and the paired retry fail.
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(errDevice).Twice()
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)
	assert.Equal(t, auth.StatePaired, e.State())

	// Replay: only the paired retry runs.
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)

	assert.True(t, e.IsConnected())
	client.AssertNumberOfCalls(t, "Connect", 3)
}

func TestFirstSightSuccessSkipsPairedRetry(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Pair(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)
	e.OnConnect(ctx, connectRecord("adb-R58M", "10.0.0.2", 40000), client)

	assert.True(t, e.IsConnected())
}

func TestReplayWhenConnectedIsNoop(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()

	e := auth.NewEngine(10, "test")
	record := connectRecord("adb-R58M", "10.0.0.2", 40000)
	e.OnConnect(ctx, record, client)
	require.True(t, e.IsConnected())

	for i := 0; i < 3; i++ {
		e.OnConnect(ctx, record, client)
		e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)
	}

	assert.True(t, e.IsConnected())
	client.AssertNotCalled(t, "Pair", mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectedNeverRegresses(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Connect(mock.Anything, "10.0.0.2:40000").Return(nil).Once()
	client.EXPECT().Connect(mock.Anything, "10.0.0.3:40000").Return(errDevice).Once()

	e := auth.NewEngine(10, "test")
	e.OnConnect(ctx, connectRecord("adb-a", "10.0.0.2", 40000), client)
	e.OnConnect(ctx, connectRecord("adb-b", "10.0.0.3", 40000), client)

	assert.Equal(t, auth.StateConnected, e.State())
}

func TestNonLocalRecordsAreIgnored(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)

	e := auth.NewEngine(10, "test")
	remotePair := discovery.ServiceRecord{Name: "test", IP: "10.0.0.2", Port: 37000, Domain: "example.com"}
	remoteConnect := discovery.ServiceRecord{Name: "test", IP: "10.0.0.2", Port: 40000, Domain: "example.com"}

	e.OnPair(ctx, remotePair, client)
	e.OnConnect(ctx, remoteConnect, client)

	assert.Equal(t, auth.StateUnpaired, e.State())
	_, ok := e.KnownAddress("10.0.0.2")
	assert.False(t, ok)
	client.AssertNotCalled(t, "Pair", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
}

func TestOnPairNameMatching(t *testing.T) {
	tests := []struct {
		name       string
		expected   string
		discovered string
		wantPair   bool
	}{
		{"discovered contains expected", "WIFI Android Connect", "WIFI Android Connect._adb-tls-pairing._tcp.local.", true},
		{"expected contains discovered", "studio-WIFI Android Connect-x", "WIFI Android Connect", true},
		{"exact", "abc", "abc", true},
		{"unrelated", "connectAndroid", "adb-R58M-abc._adb-tls-pairing._tcp.local.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockDeviceClient(t)
			if tt.wantPair {
				client.EXPECT().Pair(mock.Anything, "10.0.0.2:37000", pairing.Code(123456)).Return(nil).Once()
			}

			e := auth.NewEngine(123456, tt.expected)
			record := discovery.ServiceRecord{Name: tt.discovered, IP: "10.0.0.2", Port: 37000, Domain: "local"}
			e.OnPair(context.Background(), record, client)

			if tt.wantPair {
				assert.Equal(t, auth.StatePaired, e.State())
			} else {
				assert.Equal(t, auth.StateUnpaired, e.State())
			}
		})
	}
}

func TestOnPairFailureKeepsUnpaired(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	record := pairingRecord("test", "10.0.0.2", 37000)

	client.EXPECT().Pair(mock.Anything, "10.0.0.2:37000", pairing.Code(10)).Return(errDevice).Once()
	e := auth.NewEngine(10, "test")
	e.OnPair(ctx, record, client)
	assert.Equal(t, auth.StateUnpaired, e.State())

	// The next poll re-offers the record and the pair is retried.
	client.EXPECT().Pair(mock.Anything, "10.0.0.2:37000", pairing.Code(10)).Return(nil).Once()
	e.OnPair(ctx, record, client)
	assert.Equal(t, auth.StatePaired, e.State())

	// Once paired, pairing records are ignored.
	e.OnPair(ctx, record, client)
	client.AssertNumberOfCalls(t, "Pair", 2)
}

func TestEngineRecordsTrace(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Pair(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	client.EXPECT().Connect(mock.Anything, mock.Anything).Return(nil).Once()

	trace := &eventLog{}
	recorder := log.NewRecorder(trace)

	e := auth.NewEngine(10, "test")
	e.SetRecorder(recorder)

	remote := discovery.ServiceRecord{Name: "x", IP: "10.0.0.9", Port: 1, Domain: "example.com"}
	e.OnConnect(ctx, remote, client)
	e.OnConnect(ctx, remote, client)
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)
	e.OnConnect(ctx, connectRecord("adb", "10.0.0.2", 40000), client)

	var ignored int
	for _, ev := range trace.byCategory(log.CategoryRecord) {
		if ev.Record.Ignored {
			ignored++
		}
	}
	assert.Equal(t, 1, ignored, "an ignored record is reported once")

	actions := trace.byCategory(log.CategoryAction)
	require.Len(t, actions, 2)
	assert.Equal(t, log.ActionPair, actions[0].Action.Kind)
	assert.Equal(t, log.ActionConnect, actions[1].Action.Kind)

	states := trace.byCategory(log.CategoryState)
	require.Len(t, states, 2)
	assert.Equal(t, "PAIRED", states[0].StateChange.NewState)
	assert.Equal(t, "CONNECTED", states[1].StateChange.NewState)

	for _, ev := range trace.events {
		assert.Equal(t, recorder.AttemptID(), ev.AttemptID)
	}
}

func TestEngineMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	client := mocks.NewMockDeviceClient(t)
	client.EXPECT().Pair(mock.Anything, mock.Anything, mock.Anything).Return(errDevice).Once()
	client.EXPECT().Pair(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	e := auth.NewEngine(10, "test")
	e.SetMetrics(m)
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)
	e.OnPair(ctx, pairingRecord("test", "10.0.0.2", 37000), client)

	n, err := testutil.GatherAndCount(reg, "wac_pair_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per result")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "UNPAIRED", auth.StateUnpaired.String())
	assert.Equal(t, "PAIRED", auth.StatePaired.String())
	assert.Equal(t, "CONNECTED", auth.StateConnected.String())
	assert.Equal(t, "UNKNOWN", auth.State(7).String())
}
