//go:build windows

package logger

import (
	"fmt"

	"golang.org/x/sys/windows/svc/eventlog"
)

// Event IDs written to the Windows Event Log.
const (
	EventIDInfo    uint32 = 1
	EventIDWarning uint32 = 2
	EventIDError   uint32 = 3
)

// EventLogWriter is the subset of *eventlog.Log used by EventLogger.
type EventLogWriter interface {
	Info(eid uint32, msg string) error
	Warning(eid uint32, msg string) error
	Error(eid uint32, msg string) error
	Close() error
}

var eventLogOpener = func(source string) (EventLogWriter, error) {
	return eventlog.Open(source)
}

// EventLogger writes log messages to the Windows Event Log.
// Write failures are dropped: a relaunch must not fail because the
// event source is missing or the log is full.
type EventLogger struct {
	log EventLogWriter
}

// NewEventLogger opens the event log for source.
func NewEventLogger(source string) (*EventLogger, error) {
	w, err := eventLogOpener(source)
	if err != nil {
		return nil, fmt.Errorf("open event log %q: %w", source, err)
	}
	return &EventLogger{log: w}, nil
}

// NewEventLoggerWithWriter wraps an existing writer.
func NewEventLoggerWithWriter(w EventLogWriter) *EventLogger {
	return &EventLogger{log: w}
}

func (e *EventLogger) Info(format string, args ...interface{}) {
	_ = e.log.Info(EventIDInfo, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Warning(format string, args ...interface{}) {
	_ = e.log.Warning(EventIDWarning, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Error(format string, args ...interface{}) {
	_ = e.log.Error(EventIDError, fmt.Sprintf(format, args...))
}

// Close releases the event log handle.
func (e *EventLogger) Close() error {
	if e.log == nil {
		return nil
	}
	return e.log.Close()
}

var _ Logger = (*EventLogger)(nil)
