package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sampleAttempt is a successful QR pairing followed by a connect.
func sampleAttempt(id string, start time.Time) []log.Event {
	return []log.Event{
		{
			Timestamp: start, AttemptID: id, Stream: discovery.StreamConnect, Category: log.CategoryRecord,
			Address: "10.0.0.9:5555",
			Record:  &log.RecordEvent{Name: "other", IP: "10.0.0.9", Port: 5555, Domain: "example.com", Ignored: true, Reason: "domain is not local"},
		},
		{
			Timestamp: start.Add(100 * time.Millisecond), AttemptID: id, Stream: discovery.StreamPairing, Category: log.CategoryAction,
			Address: "10.0.0.2:37000",
			Action:  &log.ActionEvent{Kind: log.ActionPair, Error: "wrong code", Duration: 250 * time.Millisecond},
		},
		{
			Timestamp: start.Add(time.Second), AttemptID: id, Stream: discovery.StreamPairing, Category: log.CategoryAction,
			Address: "10.0.0.2:37000",
			Action:  &log.ActionEvent{Kind: log.ActionPair, Success: true, Duration: 1200 * time.Millisecond},
		},
		{
			Timestamp: start.Add(time.Second), AttemptID: id, Stream: discovery.StreamPairing, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "UNPAIRED", NewState: "PAIRED", Reason: "pair succeeded"},
		},
		{
			Timestamp: start.Add(2 * time.Second), AttemptID: id, Stream: discovery.StreamConnect, Category: log.CategoryAction,
			Address: "10.0.0.2:40000",
			Action:  &log.ActionEvent{Kind: log.ActionConnect, Success: true, Duration: 30 * time.Millisecond},
		},
		{
			Timestamp: start.Add(2 * time.Second), AttemptID: id, Stream: discovery.StreamConnect, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "PAIRED", NewState: "CONNECTED"},
		},
	}
}
