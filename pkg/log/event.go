package log

import (
	"time"

	"github.com/wifi-android-connect/wac-go/pkg/discovery"
)

// Event represents one entry of the authentication trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// AttemptID uniquely identifies the authentication attempt (UUID).
	AttemptID string `cbor:"2,keyasint"`

	// Stream is the discovery stream that triggered the event.
	Stream discovery.Stream `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Address is the device address (ip:port) involved, if any.
	Address string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Record      *RecordEvent      `cbor:"10,keyasint,omitempty"` // Discovery
	Action      *ActionEvent      `cbor:"11,keyasint,omitempty"` // Pair/connect attempt
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Authentication state
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"` // Errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRecord indicates a record offered to the engine.
	CategoryRecord Category = 0
	// CategoryAction indicates a pair or connect attempt.
	CategoryAction Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRecord:
		return "RECORD"
	case CategoryAction:
		return "ACTION"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RecordEvent captures a service record offered to the engine.
type RecordEvent struct {
	Name   string `cbor:"1,keyasint"`
	IP     string `cbor:"2,keyasint"`
	Port   uint16 `cbor:"3,keyasint"`
	Domain string `cbor:"4,keyasint"`

	// Ignored is set when the engine filtered the record out.
	Ignored bool `cbor:"5,keyasint,omitempty"`

	// Reason explains why the record was ignored.
	Reason string `cbor:"6,keyasint,omitempty"`
}

// NewRecordEvent converts a service record.
func NewRecordEvent(r discovery.ServiceRecord) *RecordEvent {
	return &RecordEvent{
		Name:   r.Name,
		IP:     r.IP,
		Port:   r.Port,
		Domain: r.Domain,
	}
}

// ActionKind identifies a side-effecting device operation.
type ActionKind uint8

const (
	// ActionPair is a pair attempt with the pair code.
	ActionPair ActionKind = 0
	// ActionConnect is a connect attempt.
	ActionConnect ActionKind = 1
)

// String returns the action name.
func (a ActionKind) String() string {
	switch a {
	case ActionPair:
		return "PAIR"
	case ActionConnect:
		return "CONNECT"
	default:
		return "UNKNOWN"
	}
}

// ActionEvent captures one pair or connect attempt.
type ActionEvent struct {
	// Kind is the operation attempted.
	Kind ActionKind `cbor:"1,keyasint"`

	// Success reports whether the device client accepted the request.
	Success bool `cbor:"2,keyasint"`

	// Error is the failure message (empty on success).
	Error string `cbor:"3,keyasint,omitempty"`

	// Duration of the call. Stored as nanoseconds.
	Duration time.Duration `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures authentication state transitions.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors outside of device actions, e.g. discovery
// failing to start.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
