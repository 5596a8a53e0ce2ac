package log

// MultiLogger fans each event out to a fixed list of loggers, in order.
// wac uses it to write the trace file and mirror it to slog at -vv.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger returns a MultiLogger over the non-nil loggers given.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.sinks = append(m.sinks, l)
		}
	}
	return m
}

// Log forwards event to every sink.
func (m *MultiLogger) Log(event Event) {
	for _, sink := range m.sinks {
		sink.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
