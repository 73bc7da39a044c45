package supervisor

import (
	"errors"
	"fmt"

	"github.com/traykeep/traykeep/internal/proctable"
)

// Outcome is the result of a termination request for one matched process.
type Outcome int

const (
	Terminated Outcome = iota
	TerminateFailed
)

func (o Outcome) String() string {
	switch o {
	case Terminated:
		return "terminated"
	case TerminateFailed:
		return "terminate failed"
	}
	return "unknown"
}

// Termination records what happened to one matched process.
type Termination struct {
	Process proctable.Process
	Outcome Outcome
	// Err is the swallowed termination error, nil when Outcome is Terminated.
	Err error
}

// Report summarizes a relaunch or stop run.
type Report struct {
	// Matches holds one entry per matched process. Empty means no instance
	// was running.
	Matches []Termination
	// SpawnedPID is the pid of the new instance, 0 when nothing was spawned.
	SpawnedPID int
}

// NoMatch reports whether no running instance was found.
func (r *Report) NoMatch() bool {
	return len(r.Matches) == 0
}

// Terminated returns the pids whose termination request succeeded.
func (r *Report) Terminated() []int32 {
	var pids []int32
	for _, m := range r.Matches {
		if m.Outcome == Terminated {
			pids = append(pids, m.Process.PID)
		}
	}
	return pids
}

// Failed returns the matches whose termination request failed.
func (r *Report) Failed() []Termination {
	var out []Termination
	for _, m := range r.Matches {
		if m.Outcome == TerminateFailed {
			out = append(out, m)
		}
	}
	return out
}

// FailedErr joins the termination errors, each naming its pid. It returns
// nil when every termination succeeded.
func (r *Report) FailedErr() error {
	var errs []error
	for _, m := range r.Failed() {
		errs = append(errs, fmt.Errorf("pid %d: %w", m.Process.PID, m.Err))
	}
	return errors.Join(errs...)
}
