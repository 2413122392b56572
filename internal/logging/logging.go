// Package logging builds the structured logger shared by both games.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at the given level.
// Game output owns stdout, so callers normally pass stderr.
func New(w io.Writer, level slog.Level, game string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("game", game))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
