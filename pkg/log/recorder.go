package log

import (
	"time"

	"github.com/google/uuid"
	"github.com/wifi-android-connect/wac-go/pkg/discovery"
)

// Recorder builds events for one authentication attempt and forwards them
// to a Logger. All events share the recorder's attempt ID.
type Recorder struct {
	logger    Logger
	attemptID string
	now       func() time.Time
}

// NewRecorder creates a Recorder with a fresh attempt ID.
// A nil logger discards events.
func NewRecorder(logger Logger) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{
		logger:    logger,
		attemptID: uuid.NewString(),
		now:       time.Now,
	}
}

// AttemptID returns the ID stamped on every event.
func (r *Recorder) AttemptID() string {
	return r.attemptID
}

// Record logs a record offered to the engine. A non-empty reason marks the
// record as ignored.
func (r *Recorder) Record(stream discovery.Stream, rec discovery.ServiceRecord, reason string) {
	ev := NewRecordEvent(rec)
	if reason != "" {
		ev.Ignored = true
		ev.Reason = reason
	}
	r.emit(Event{
		Stream:   stream,
		Category: CategoryRecord,
		Address:  rec.Address(),
		Record:   ev,
	})
}

// Action logs a pair or connect attempt. err is nil on success.
func (r *Recorder) Action(stream discovery.Stream, kind ActionKind, address string, err error, d time.Duration) {
	ev := &ActionEvent{
		Kind:     kind,
		Success:  err == nil,
		Duration: d,
	}
	if err != nil {
		ev.Error = err.Error()
	}
	r.emit(Event{
		Stream:   stream,
		Category: CategoryAction,
		Address:  address,
		Action:   ev,
	})
}

// StateChange logs a state transition.
func (r *Recorder) StateChange(stream discovery.Stream, oldState, newState, reason string) {
	r.emit(Event{
		Stream:   stream,
		Category: CategoryState,
		StateChange: &StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

// Error logs an error that is not tied to a device action.
func (r *Recorder) Error(context string, err error) {
	if err == nil {
		return
	}
	r.emit(Event{
		Category: CategoryError,
		Error: &ErrorEventData{
			Message: err.Error(),
			Context: context,
		},
	})
}

func (r *Recorder) emit(event Event) {
	event.Timestamp = r.now()
	event.AttemptID = r.attemptID
	r.logger.Log(event)
}
