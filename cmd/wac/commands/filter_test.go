package commands

import (
	"testing"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
)

func TestBuildFilter(t *testing.T) {
	filter, err := BuildFilter(FilterOptions{
		AttemptID: "a",
		Stream:    "Connect",
		Category:  "ACTION",
		Action:    "connect",
		Address:   "10.0.0.2:40000",
		TimeStart: "2026-01-28T10:00:00Z",
		TimeEnd:   "2026-01-28T11:00:00Z",
	})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}

	if filter.AttemptID != "a" || filter.Address != "10.0.0.2:40000" {
		t.Errorf("unexpected filter: %+v", filter)
	}
	if filter.Stream == nil || *filter.Stream != discovery.StreamConnect {
		t.Errorf("Stream = %v", filter.Stream)
	}
	if filter.Category == nil || *filter.Category != log.CategoryAction {
		t.Errorf("Category = %v", filter.Category)
	}
	if filter.Action == nil || *filter.Action != log.ActionConnect {
		t.Errorf("Action = %v", filter.Action)
	}
	want := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	if filter.TimeStart == nil || !filter.TimeStart.Equal(want) {
		t.Errorf("TimeStart = %v", filter.TimeStart)
	}
}

func TestBuildFilterEmpty(t *testing.T) {
	filter, err := BuildFilter(FilterOptions{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if !filter.Matches(log.Event{}) {
		t.Error("empty filter should match everything")
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"stream", FilterOptions{Stream: "bluetooth"}},
		{"category", FilterOptions{Category: "frame"}},
		{"action", FilterOptions{Action: "unpair"}},
		{"time-start", FilterOptions{TimeStart: "yesterday"}},
		{"time-end", FilterOptions{TimeEnd: "2026-13-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildFilter(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}
