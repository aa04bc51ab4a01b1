// Package logging builds the structured event trace used by the warehouse
// engine. It adds a CONFIG severity, below INFO, for system and input-echo
// records.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// LevelConfig sits between DEBUG and INFO.
const LevelConfig = slog.Level(-2)

// New returns a text logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelConfig {
				a.Value = slog.StringValue("CONFIG")
			}
			return a
		},
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Config logs msg at LevelConfig.
func Config(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger.Log(ctx, LevelConfig, msg, args...)
}
