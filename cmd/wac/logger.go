package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// levelFor maps the -v count to a log level and whether to add source
// locations.
func levelFor(verbosity int) (slog.Level, bool) {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn, false
	case verbosity == 1:
		return slog.LevelInfo, false
	case verbosity == 2:
		return slog.LevelDebug, false
	default:
		return slog.LevelDebug, true
	}
}

// newLogger creates the command logger. Output to a terminal uses the
// text handler; piped output uses JSON.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level, addSource := levelFor(verbosity)
	options := &slog.HandlerOptions{Level: level, AddSource: addSource}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
