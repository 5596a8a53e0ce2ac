package log

// Logger receives the authentication trace of a connect attempt.
//
// The engine calls Log synchronously from the reconcile loop, so a slow
// implementation delays the next poll. Implementations may be shared
// between attempts and must tolerate concurrent calls.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
