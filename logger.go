package pairscan

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with pairscan-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return newLevelLogger(os.Stderr, slog.LevelInfo, false)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLevelLogger(os.Stderr, level, true)
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return newLevelLogger(os.Stderr, level, false)
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return newLevelLogger(io.Discard, slog.Level(1000), false) // unreachable level
}

func newLevelLogger(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return NewLogger(slog.NewJSONHandler(w, opts))
	}
	return NewLogger(slog.NewTextHandler(w, opts))
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithBits adds a bit width field to the logger.
func (l *Logger) WithBits(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogFind logs a window-scan closest-pair search.
func (l *Logger) LogFind(count, bits, window int, comparisons int64, duration time.Duration, err error) {
	if err != nil {
		l.WithCount(count).Warn("closest pair rejected", "error", err)
		return
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.WithCount(count).WithBits(bits).Debug("closest pair found",
		"window", window,
		"comparisons", comparisons,
		"duration", duration,
	)
}

// LogExact logs an exact (brute force or divide-and-conquer) search.
func (l *Logger) LogExact(algorithm string, count int, comparisons int64, duration time.Duration, err error) {
	if err != nil {
		l.WithCount(count).Warn("exact closest pair rejected",
			"algorithm", algorithm,
			"error", err,
		)
		return
	}
	l.WithCount(count).Debug("exact closest pair found",
		"algorithm", algorithm,
		"comparisons", comparisons,
		"duration", duration,
	)
}
