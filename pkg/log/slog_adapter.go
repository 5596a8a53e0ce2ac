package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see the trace in the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("attempt_id", event.AttemptID),
		slog.String("stream", event.Stream.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Address != "" {
		attrs = append(attrs, slog.String("address", event.Address))
	}

	switch {
	case event.Record != nil:
		attrs = append(attrs,
			slog.String("name", event.Record.Name),
			slog.String("domain", event.Record.Domain),
		)
		if event.Record.Ignored {
			attrs = append(attrs,
				slog.Bool("ignored", true),
				slog.String("reason", event.Record.Reason),
			)
		}
	case event.Action != nil:
		attrs = append(attrs,
			slog.String("action", event.Action.Kind.String()),
			slog.Bool("success", event.Action.Success),
			slog.Duration("duration", event.Action.Duration),
		)
		if event.Action.Error != "" {
			attrs = append(attrs, slog.String("error", event.Action.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), a.level, "auth", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
