package supervisor

import (
	"context"
	"errors"
	"sync"

	"github.com/traykeep/traykeep/internal/proctable"
)

type fakeTable struct {
	mu           sync.Mutex
	procs        []proctable.Process
	listErr      error
	terminateErr map[int32]error
	terminated   []int32
	alive        map[int32]int // number of Alive calls that still report true
}

func (f *fakeTable) List(context.Context) ([]proctable.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]proctable.Process(nil), f.procs...), nil
}

func (f *fakeTable) Terminate(_ context.Context, pid int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, pid)
	if err := f.terminateErr[pid]; err != nil {
		return err
	}
	kept := f.procs[:0]
	for _, p := range f.procs {
		if p.PID != pid {
			kept = append(kept, p)
		}
	}
	f.procs = kept
	return nil
}

func (f *fakeTable) Alive(_ context.Context, pid int32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.alive[pid]
	if n <= 0 {
		return false
	}
	f.alive[pid] = n - 1
	return true
}

type fakeSpawner struct {
	calls []Command
	pid   int
	err   error
	table *fakeTable // when set, spawned commands appear in the table
}

func (f *fakeSpawner) Spawn(c Command) (int, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return 0, f.err
	}
	f.pid++
	if f.table != nil {
		f.table.mu.Lock()
		f.table.procs = append(f.table.procs, proctable.Process{
			PID:     int32(f.pid),
			Cmdline: c.Path + " " + c.Args[0],
		})
		f.table.mu.Unlock()
	}
	return f.pid, nil
}

var errAccessDenied = errors.New("access denied")
