package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"codeberg.org/algopatterns/apierrors/apierr"
)

var (
	// default logger instance
	defaultLogger *slog.Logger
)

// initializes the logger based on environment
func init() {
	defaultLogger = New(os.Getenv("ENVIRONMENT"), nil)
}

// builds a logger for the given environment.
// production gets JSON at INFO, everything else human-readable text at DEBUG.
// a nil writer selects stdout (production) or stderr (development).
func New(environment string, w io.Writer) *slog.Logger {
	if environment == "production" {
		if w == nil {
			w = os.Stdout
		}

		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// replaces the default logger (used after config is loaded, and by tests)
func SetDefault(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// creates a logger with context
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// helper type for context key
type loggerKey struct{}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs the full detail of an API error, regardless of what the caller gets to see.
// sensitive errors go out at ERROR with their stack, safe ones at DEBUG.
func APIError(ctx context.Context, err *apierr.Error, msg string, args ...any) {
	if err == nil {
		return
	}

	l := FromContext(ctx)

	attrs := make([]any, 0, len(args)+14)
	attrs = append(attrs, args...)
	attrs = append(attrs,
		"kind", err.Name(),
		"status", err.StatusCode(),
		"error", err.Message(),
	)

	if code := err.Code(); code != "" {
		attrs = append(attrs, "code", code)
	}

	if v := err.Validation(); v != nil {
		attrs = append(attrs, "validation", v)
	}

	if info := err.Info(); info != nil {
		attrs = append(attrs, "info", info)
	}

	if err.IsSafe() {
		l.DebugContext(ctx, msg, attrs...)
		return
	}

	attrs = append(attrs, "stack", err.Stack())
	l.ErrorContext(ctx, msg, attrs...)
}

// logs a fatal error and exits (for CLI tools)
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs a fatal error with error and exits (for CLI tools)
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
