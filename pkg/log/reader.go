package log

import (
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
)

// Filter specifies criteria for filtering events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// AttemptID filters by exact attempt ID match.
	AttemptID string

	// Stream filters by discovery stream. Error events carry no stream and
	// never match.
	Stream *discovery.Stream

	// Category filters by event category.
	Category *Category

	// Action filters action events by kind. Non-action events never match.
	Action *ActionKind

	// Address filters by device address.
	Address string

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.AttemptID != "" && event.AttemptID != f.AttemptID {
		return false
	}
	if f.Stream != nil && (event.Category == CategoryError || event.Stream != *f.Stream) {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Action != nil && (event.Action == nil || event.Action.Kind != *f.Action) {
		return false
	}
	if f.Address != "" && event.Address != f.Address {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads events from a CBOR-encoded file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all events from the specified log file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads events matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
