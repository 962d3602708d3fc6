package posterize

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with posterize-specific context.
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

// WithPixels adds a pixel count field to the logger.
func (l *Logger) WithPixels(pixels int) *Logger {
	return &Logger{
		Logger: l.Logger.With("pixels", pixels),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogPosterize logs a buffer posterize run.
func (l *Logger) LogPosterize(ctx context.Context, pixels, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "posterize failed",
			"pixels", pixels,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "posterize completed",
			"pixels", pixels,
			"iterations", iterations,
			"converged", converged,
		)
	}
}

// LogImage logs an image posterize run.
func (l *Logger) LogImage(ctx context.Context, width, height int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "image posterize failed",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "image posterize completed",
			"width", width,
			"height", height,
		)
	}
}
