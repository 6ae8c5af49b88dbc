// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the sfe command,
// the session shell and the batch runner.
//
// The logger is a plain *slog.Logger. Output goes to stderr by default so
// that stdout stays reserved for codec output:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Info("alphabet loaded", "path", path, "symbols", a.Len())
//
// The codec core (alphabet, sfe, textio) never logs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a log severity. Setting a minimum level drops everything below it.
type Level int

const (
	// LevelDebug traces individual load/run/save steps.
	LevelDebug Level = iota
	// LevelInfo reports completed operations.
	LevelInfo
	// LevelWarn reports recoverable surprises.
	LevelWarn
	// LevelError reports failed operations.
	LevelError
)

// String returns "debug", "info", "warn", "error" or "unknown".
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

func (l Level) slogLevel() slog.Level {
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

// ParseLevel maps a case-insensitive level name to a Level.
// "warning" is accepted as an alias of "warn"; the empty string means info.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", name)
	}
}

// Config configures New. The zero value logs Info and above as text to stderr.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// JSON switches from the text handler to the JSON handler.
	JSON bool

	// Service, when set, is attached to every record as "service".
	Service string

	// Writer receives the records. Default: os.Stderr.
	Writer io.Writer
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
