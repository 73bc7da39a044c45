// Package supervisor keeps a single instance of a script running: it kills
// every process whose command line names the script and starts a fresh,
// detached one.
//
// Single-instance is best-effort. Nothing waits between the kill requests
// and the spawn, so the old instance may still hold its tray icon or files
// for a moment after the new one starts.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/traykeep/traykeep/internal/proctable"
	"github.com/traykeep/traykeep/pkg/logger"
)

// ErrStillRunning is returned by WaitGone when processes outlive the wait.
var ErrStillRunning = errors.New("processes still running")

// Supervisor runs relaunch and stop sequences against a process table.
type Supervisor struct {
	table   proctable.Table
	spawner Spawner
	log     logger.Logger
	self    int32
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithLogger sets the logger. The default discards messages.
func WithLogger(l logger.Logger) Option {
	return func(s *Supervisor) { s.log = l }
}

// WithSelfPID overrides the pid excluded from matching. Defaults to the
// current process.
func WithSelfPID(pid int32) Option {
	return func(s *Supervisor) { s.self = pid }
}

// New creates a Supervisor.
func New(table proctable.Table, spawner Spawner, opts ...Option) *Supervisor {
	s := &Supervisor{
		table:   table,
		spawner: spawner,
		log:     logger.NewNopLogger(),
		self:    int32(os.Getpid()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Instances returns the running processes that match t.
func (s *Supervisor) Instances(ctx context.Context, t Target) ([]proctable.Process, error) {
	procs, err := s.table.List(ctx)
	if err != nil {
		return nil, err
	}
	return Match(procs, t.Pattern(), s.self), nil
}

// Relaunch terminates every running instance of t and starts a new one.
// Listing and termination failures are recorded in the report and logged;
// only an invalid target or a spawn failure is returned as an error.
func (s *Supervisor) Relaunch(ctx context.Context, t Target) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	scriptPath, err := t.ScriptPath()
	if err != nil {
		return nil, err
	}

	report := s.terminateAll(ctx, t)

	pid, err := s.spawner.Spawn(Command{
		Path: t.Interpreter.Location,
		Args: []string{scriptPath},
		Dir:  t.ScriptDir,
	})
	if err != nil {
		s.log.Error("spawn %s %s: %v", t.Interpreter.Location, scriptPath, err)
		return report, fmt.Errorf("spawn %s: %w", t.Script, err)
	}
	report.SpawnedPID = pid
	s.log.Info("started %s %s (pid %d)", t.Interpreter.Location, scriptPath, pid)
	return report, nil
}

// Stop terminates every running instance of t without starting a new one.
func (s *Supervisor) Stop(ctx context.Context, t Target) (*Report, error) {
	if t.Script == "" {
		return nil, fmt.Errorf("%w: script is empty", ErrInvalidTarget)
	}
	return s.terminateAll(ctx, t), nil
}

func (s *Supervisor) terminateAll(ctx context.Context, t Target) *Report {
	report := &Report{}
	matches, err := s.Instances(ctx, t)
	if err != nil {
		s.log.Warning("list processes: %v", err)
		return report
	}
	for _, p := range matches {
		term := Termination{Process: p, Outcome: Terminated}
		if err := s.table.Terminate(ctx, p.PID); err != nil {
			term.Outcome = TerminateFailed
			term.Err = err
			s.log.Warning("terminate pid %d: %v", p.PID, err)
		} else {
			s.log.Info("terminated pid %d (%s)", p.PID, p.Cmdline)
		}
		report.Matches = append(report.Matches, term)
	}
	return report
}

// WaitGone polls until none of pids is alive, ctx is done or timeout
// elapses. onGone, when not nil, is called once per pid as it disappears.
func (s *Supervisor) WaitGone(ctx context.Context, pids []int32, timeout, interval time.Duration, onGone func(pid int32)) error {
	pending := make(map[int32]struct{}, len(pids))
	for _, pid := range pids {
		pending[pid] = struct{}{}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for pid := range pending {
			if !s.table.Alive(ctx, pid) {
				delete(pending, pid)
				if onGone != nil {
					onGone(pid)
				}
			}
		}
		if len(pending) == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %d after %v", ErrStillRunning, len(pending), timeout)
		case <-ticker.C:
		}
	}
}
