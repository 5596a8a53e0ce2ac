// Package commands implements the wac log inspection commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [attempt:id] STREAM CATEGORY Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	attempt := shortenAttemptID(event.AttemptID)
	stream := event.Stream.String()
	if event.Category == log.CategoryError {
		stream = "-"
	}

	var typeLabel string
	switch {
	case event.Record != nil:
		typeLabel = "Record"
	case event.Action != nil:
		typeLabel = event.Action.Kind.String()
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [attempt:%s] %-7s %-6s %s\n", ts, attempt, stream, event.Category.String(), typeLabel)

	if event.Address != "" {
		fmt.Fprintf(w, "  Address: %s\n", event.Address)
	}

	switch {
	case event.Record != nil:
		formatRecordDetails(w, event.Record)
	case event.Action != nil:
		formatActionDetails(w, event.Action)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenAttemptID returns the first 8 characters of the attempt ID.
func shortenAttemptID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatRecordDetails(w io.Writer, rec *log.RecordEvent) {
	fmt.Fprintf(w, "  Name: %s\n", rec.Name)
	fmt.Fprintf(w, "  Domain: %s\n", rec.Domain)
	if rec.Ignored {
		fmt.Fprintf(w, "  Ignored: %s\n", rec.Reason)
	}
}

func formatActionDetails(w io.Writer, action *log.ActionEvent) {
	if action.Success {
		fmt.Fprintln(w, "  Result: OK")
	} else {
		fmt.Fprintf(w, "  Result: FAILED (%s)\n", action.Error)
	}
	if action.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(action.Duration))
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// RunView prints every event matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
