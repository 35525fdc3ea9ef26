package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process logger. Level is one of debug, info, warn
// or error; Format is text or json. Unknown values fall back to info and
// text. AddSource attaches the caller's file and line to every record.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested log format to "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// New builds a logger writing to w. Platform clients and distributors get
// children of it, so every record shares the same handler.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
