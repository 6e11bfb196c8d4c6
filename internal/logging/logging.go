// Package logging builds the structured logger used by the wfc binaries.
//
// Library packages never log; they return errors. Commands log run progress
// through the *slog.Logger returned by New, with a text or JSON handler and a
// level taken from the configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity that gets written.
type Level int

const (
	// LevelDebug logs every step of a run.
	LevelDebug Level = iota
	// LevelInfo logs run boundaries and summaries.
	LevelInfo
	// LevelWarn logs contradictions and recoverable problems.
	LevelWarn
	// LevelError logs failed runs only.
	LevelError
)

// String returns "debug", "info", "warn" or "error".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts the names produced by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config selects the handler.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// JSON switches from the text handler to the JSON handler.
	JSON bool
	// Quiet discards everything.
	Quiet bool
	// Service, when set, is attached to every record as "service".
	Service string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Quiet {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(handler)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return New(Config{Quiet: true})
}
