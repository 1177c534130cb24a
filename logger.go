package cubego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cubego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", name),
	}
}

// WithAttribute adds an attribute field to the logger.
func (l *Logger) WithAttribute(label string) *Logger {
	return &Logger{
		Logger: l.Logger.With("attribute", label),
	}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogSet logs a fact write.
func (l *Logger) LogSet(ctx context.Context, label string, dimensions int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "set failed",
			"attribute", label,
			"dimensions", dimensions,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "set completed",
			"attribute", label,
			"dimensions", dimensions,
		)
	}
}

// LogSetMany logs a batch write.
func (l *Logger) LogSetMany(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch set failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch set completed",
			"count", count,
		)
	}
}

// LogScan logs the completion of a row scan.
func (l *Logger) LogScan(ctx context.Context, total, produced int) {
	l.DebugContext(ctx, "scan completed",
		"total", total,
		"produced", produced,
	)
}
