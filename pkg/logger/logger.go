// Package logger provides the logging interface used by traykeep.
// Console output goes through zerolog; on Windows the same messages can be
// mirrored to the Event Log so that runs started at login leave a trace.
package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is the logging surface shared by all traykeep components.
type Logger interface {
	// Info logs an informational message (e.g., "spawned pid 4242").
	Info(format string, args ...interface{})

	// Warning logs a recoverable failure (e.g., "terminate pid 17: access denied").
	Warning(format string, args ...interface{})

	// Error logs a failure that aborts the current command.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger. Safe to call more than once.
	Close() error
}

// ConsoleLogger writes human readable lines through a zerolog ConsoleWriter.
type ConsoleLogger struct {
	zlog zerolog.Logger
}

// NewConsoleLogger creates a console logger writing to w.
// Only errors are shown unless verbose is set, which keeps the single
// confirmation line on stdout as the only output of a successful run.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	level := zerolog.ErrorLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return &ConsoleLogger{
		zlog: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// Info logs at info level.
func (c *ConsoleLogger) Info(format string, args ...interface{}) {
	c.zlog.Info().Msgf(format, args...)
}

// Warning logs at warn level.
func (c *ConsoleLogger) Warning(format string, args ...interface{}) {
	c.zlog.Warn().Msgf(format, args...)
}

// Error logs at error level.
func (c *ConsoleLogger) Error(format string, args ...interface{}) {
	c.zlog.Error().Msgf(format, args...)
}

// Close is a no-op; the underlying writer is owned by the caller.
func (c *ConsoleLogger) Close() error {
	return nil
}

// NopLogger discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

// MockLogger records every formatted message for assertions in tests.
type MockLogger struct {
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NopLogger)(nil)
	_ Logger = (*MockLogger)(nil)
)
