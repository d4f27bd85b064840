// Package logging builds the slog logger shared by the bareun tools.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gembleman/bareun-go/pkg/config"
)

// Setup is New plus slog.SetDefault, for binaries that log through the
// package-level slog functions.
func Setup(w io.Writer, cfg config.LogConfig) *slog.Logger {
	logger := New(w, cfg)
	slog.SetDefault(logger)
	return logger
}

// New returns a logger writing to w. The "json" format suits log collectors;
// anything else gets the text handler with call sites attached, which is what
// a person reading the terminal wants.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := ParseLevel(cfg.Level)
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: true}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel is case-insensitive. Unknown or empty names mean info.
func ParseLevel(s string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return slog.LevelInfo
}
