// Package proctable lists, terminates and probes operating system processes.
package proctable

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// Process is a running process and its full command line.
type Process struct {
	PID     int32
	Cmdline string
}

// Table is the process facility the supervisor runs against.
type Table interface {
	// List returns every process whose command line could be read.
	List(ctx context.Context) ([]Process, error)

	// Terminate forcibly kills pid. It does not wait for the exit.
	Terminate(ctx context.Context, pid int32) error

	// Alive reports whether pid still refers to a running process.
	Alive(ctx context.Context, pid int32) bool
}

// System is the Table backed by the host operating system.
type System struct{}

// NewSystem returns the host process table.
func NewSystem() *System {
	return &System{}
}

// List enumerates running processes. Processes that exit during the scan
// or whose command line is not readable (other users, protected system
// processes) are skipped rather than failing the listing.
func (s *System) List(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil || cmdline == "" {
			continue
		}
		out = append(out, Process{PID: p.Pid, Cmdline: cmdline})
	}
	return out, nil
}

// Terminate kills pid without giving it a chance to clean up.
func (s *System) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return fmt.Errorf("find process %d: %w", pid, err)
	}
	if err := p.KillWithContext(ctx); err != nil {
		return fmt.Errorf("kill process %d: %w", pid, err)
	}
	return nil
}

// Alive reports whether pid is still running.
func (s *System) Alive(_ context.Context, pid int32) bool {
	if pid <= 0 {
		return false
	}
	return isProcessRunning(int(pid))
}

var _ Table = (*System)(nil)
