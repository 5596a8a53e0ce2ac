package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
	"github.com/wifi-android-connect/wac-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByStream   map[discovery.Stream]int
	EventsByCategory map[log.Category]int
	Attempts         map[string]*AttemptStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// AttemptStats holds statistics for a single authentication attempt.
type AttemptStats struct {
	FirstSeen      time.Time
	LastSeen       time.Time
	Events         int
	Pairs          int
	PairFailures   int
	Connects       int
	ConnectFailure int
	Ignored        int
	FinalState     string
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByStream:   make(map[discovery.Stream]int),
		EventsByCategory: make(map[log.Category]int),
		Attempts:         make(map[string]*AttemptStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	if event.Category != log.CategoryError {
		s.EventsByStream[event.Stream]++
	}
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	attempt, ok := s.Attempts[event.AttemptID]
	if !ok {
		attempt = &AttemptStats{
			FirstSeen:  event.Timestamp,
			LastSeen:   event.Timestamp,
			FinalState: "UNPAIRED",
		}
		s.Attempts[event.AttemptID] = attempt
	}
	attempt.Events++
	if event.Timestamp.After(attempt.LastSeen) {
		attempt.LastSeen = event.Timestamp
	}

	switch {
	case event.Record != nil && event.Record.Ignored:
		attempt.Ignored++
	case event.Action != nil:
		switch event.Action.Kind {
		case log.ActionPair:
			attempt.Pairs++
			if !event.Action.Success {
				attempt.PairFailures++
			}
		case log.ActionConnect:
			attempt.Connects++
			if !event.Action.Success {
				attempt.ConnectFailure++
			}
		}
	case event.StateChange != nil:
		attempt.FinalState = event.StateChange.NewState
	case event.Error != nil:
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Authentication Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stream:")
	for _, stream := range []discovery.Stream{discovery.StreamPairing, discovery.StreamConnect} {
		if count := stats.EventsByStream[stream]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", stream.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryRecord, log.CategoryAction, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Attempts: %d\n", len(stats.Attempts))
	if len(stats.Attempts) > 0 {
		type attemptInfo struct {
			id    string
			stats *AttemptStats
		}
		attempts := make([]attemptInfo, 0, len(stats.Attempts))
		for id, as := range stats.Attempts {
			attempts = append(attempts, attemptInfo{id, as})
		}
		sort.Slice(attempts, func(i, j int) bool {
			return attempts[i].stats.FirstSeen.Before(attempts[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, a := range attempts {
			duration := a.stats.LastSeen.Sub(a.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s, final state %s\n",
				shortenAttemptID(a.id), a.stats.Events, duration, a.stats.FinalState)
			fmt.Fprintf(w, "           Pair: %d (%d failed)  Connect: %d (%d failed)\n",
				a.stats.Pairs, a.stats.PairFailures, a.stats.Connects, a.stats.ConnectFailure)
			if a.stats.Ignored > 0 {
				fmt.Fprintf(w, "           Ignored records: %d\n", a.stats.Ignored)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
