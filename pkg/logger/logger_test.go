package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLogger_QuietByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewConsoleLogger(buf, false)

	l.Info("spawned pid %d", 42)
	l.Warning("terminate pid %d: %s", 17, "access denied")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level, got: %s", buf.String())
	}

	l.Error("spawn failed: %v", "not found")
	out := buf.String()
	if !strings.Contains(out, "ERR") {
		t.Errorf("expected ERR level marker, got: %s", out)
	}
	if !strings.Contains(out, "spawn failed: not found") {
		t.Errorf("expected message content, got: %s", out)
	}
}

func TestConsoleLogger_Verbose(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewConsoleLogger(buf, true)

	l.Info("spawned pid %d", 42)
	l.Warning("terminate pid %d failed", 17)

	out := buf.String()
	if !strings.Contains(out, "INF") || !strings.Contains(out, "spawned pid 42") {
		t.Errorf("expected info line, got: %s", out)
	}
	if !strings.Contains(out, "WRN") || !strings.Contains(out, "terminate pid 17 failed") {
		t.Errorf("expected warning line, got: %s", out)
	}
	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()

	l.Info("test")
	l.Warning("test")
	l.Error("test")

	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestMockLogger_RecordsCalls(t *testing.T) {
	l := NewMockLogger()

	l.Info("info %d", 1)
	l.Info("info %d", 2)
	l.Warning("warn %s", "test")
	l.Error("err %v", "fail")

	if len(l.InfoCalls) != 2 || l.InfoCalls[1] != "info 2" {
		t.Errorf("unexpected info calls: %v", l.InfoCalls)
	}
	if len(l.WarningCalls) != 1 || l.WarningCalls[0] != "warn test" {
		t.Errorf("unexpected warning calls: %v", l.WarningCalls)
	}
	if len(l.ErrorCalls) != 1 || l.ErrorCalls[0] != "err fail" {
		t.Errorf("unexpected error calls: %v", l.ErrorCalls)
	}
	if l.CloseCalled {
		t.Error("CloseCalled should be false before Close()")
	}
	_ = l.Close()
	if !l.CloseCalled {
		t.Error("CloseCalled should be true after Close()")
	}
}

func TestMultiLogger_BroadcastsToAll(t *testing.T) {
	mock1 := NewMockLogger()
	mock2 := NewMockLogger()

	multi := NewMultiLogger(mock1, nil, mock2)

	multi.Info("info msg")
	multi.Warning("warn msg")
	multi.Error("error msg")

	for i, m := range []*MockLogger{mock1, mock2} {
		if len(m.InfoCalls) != 1 || m.InfoCalls[0] != "info msg" {
			t.Errorf("mock%d should receive info message", i+1)
		}
		if len(m.WarningCalls) != 1 || m.WarningCalls[0] != "warn msg" {
			t.Errorf("mock%d should receive warning message", i+1)
		}
		if len(m.ErrorCalls) != 1 || m.ErrorCalls[0] != "error msg" {
			t.Errorf("mock%d should receive error message", i+1)
		}
	}
}

type failingCloseLogger struct {
	NopLogger
	err error
}

func (f *failingCloseLogger) Close() error { return f.err }

func TestMultiLogger_CloseJoinsErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")
	mock := NewMockLogger()

	multi := NewMultiLogger(&failingCloseLogger{err: err1}, mock, &failingCloseLogger{err: err2})

	err := multi.Close()
	if !errors.Is(err, err1) || !errors.Is(err, err2) {
		t.Fatalf("expected both errors to be joined, got %v", err)
	}
	if !mock.CloseCalled {
		t.Error("every backend should be closed even after a failure")
	}
}

func TestMultiLogger_Empty(t *testing.T) {
	multi := NewMultiLogger()

	multi.Info("test")
	multi.Warning("test")
	multi.Error("test")
	if err := multi.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}
