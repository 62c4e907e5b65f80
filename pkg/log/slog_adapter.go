package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger: successful operations at
// Debug level, failed ones at Warn.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("tier", event.Tier.String()),
		slog.String("op", event.Op.String()),
		slog.String("addr", event.Location()),
	}
	if event.Register != "" {
		attrs = append(attrs, slog.String("register", event.Register))
	}
	if !(event.Failed() && event.Op == OpRead) {
		attrs = append(attrs, slog.String("value", fmt.Sprintf("0x%04x", event.Value)))
	}
	if event.Duration > 0 {
		attrs = append(attrs, slog.Duration("duration", event.Duration))
	}

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error))
	}
	a.logger.LogAttrs(context.Background(), level, "register access", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
