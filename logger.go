package kdgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdgo-specific context.
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
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs a tree build.
func (l *Logger) LogBuild(ctx context.Context, count, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "build completed",
			"count", count,
			"dimension", dimension,
		)
	}
}

// LogQuery logs a nearest-neighbor query.
func (l *Logger) LogQuery(ctx context.Context, resultIndex int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"result_index", resultIndex,
		)
	}
}

// LogSave logs a tree save.
func (l *Logger) LogSave(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "tree saved",
			"name", name,
		)
	}
}

// LogLoad logs a tree load.
func (l *Logger) LogLoad(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "tree loaded",
			"name", name,
			"size", size,
		)
	}
}
