package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes result events to an slog.Logger.
// Useful for development when results should appear on the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that writes to logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("step_id", event.StepID),
		slog.String("kind", event.Kind.String()),
	}
	if event.StepName != "" {
		attrs = append(attrs, slog.String("step", event.StepName))
	}

	switch {
	case event.Result != nil:
		attrs = append(attrs,
			slog.String("data_id", event.Result.DataID),
			slog.String("site", event.Result.SiteLabel()),
			slog.String("type", event.Result.Type.String()),
			slog.Float64("value", event.Result.Value),
		)
		if event.Result.Pin != "" {
			attrs = append(attrs, slog.String("pin", event.Result.Pin))
		}
	case event.Share != nil:
		attrs = append(attrs,
			slog.String("data_id", event.Share.ID),
			slog.Int("sites", event.Share.Sites),
			slog.Int("size", event.Share.Size),
		)
		if event.Share.Pins > 0 {
			attrs = append(attrs, slog.Int("pins", event.Share.Pins))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), a.level, "result", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
