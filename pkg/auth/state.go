package auth

// State is the authentication state of an Engine.
type State uint8

const (
	// StateUnpaired is the initial state. The engine still holds the pair
	// code and the expected pairing name.
	StateUnpaired State = iota

	// StatePaired indicates the device accepted the pair code but no
	// session exists yet.
	StatePaired

	// StateConnected indicates a session was established. Terminal.
	StateConnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnpaired:
		return "UNPAIRED"
	case StatePaired:
		return "PAIRED"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}
