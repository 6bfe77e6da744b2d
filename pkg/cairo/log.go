package cairo

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger receives diagnostic messages from the binding: library loading,
// missing optional entry points and objects released by the garbage
// collector instead of an explicit Destroy.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// loggerBox lets an interface value live in an atomic.Pointer.
type loggerBox struct {
	Logger
}

var currentLogger atomic.Pointer[loggerBox]

func init() {
	currentLogger.Store(&loggerBox{nopLogger{}})
}

// logger returns the installed Logger. Garbage-collection cleanups call
// it from their own goroutine.
func logger() Logger {
	return currentLogger.Load().Logger
}

// SetLogger installs l as the package logger. A nil l silences logging.
// It is safe to call at any time, including while objects are being
// released in the background.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	currentLogger.Store(&loggerBox{l})
}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
//
// Example:
//
//	cairo.SetLogger(cairo.NewSlogAdapter(slog.Default()))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger adapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug logs a debug-level message with optional key-value pairs.
func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info logs an info-level message with optional key-value pairs.
func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error logs an error-level message with optional key-value pairs.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// Slog returns the wrapped *slog.Logger.
func (s *SlogAdapter) Slog() *slog.Logger {
	return s.logger
}

// DefaultLogger returns a Logger writing text to stderr at Info level.
func DefaultLogger() Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &SlogAdapter{logger: slog.New(handler)}
}

// DebugLogger returns a Logger writing text to stderr at Debug level with
// source locations.
func DebugLogger() Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	return &SlogAdapter{logger: slog.New(handler)}
}

// JSONLogger returns a Logger writing JSON lines to w at the given level.
// If w is nil, os.Stderr is used.
func JSONLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &SlogAdapter{logger: slog.New(handler)}
}
