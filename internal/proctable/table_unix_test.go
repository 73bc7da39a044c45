//go:build !windows

package proctable

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func TestSystemTerminate_KillsChild(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	pid := int32(cmd.Process.Pid)

	s := NewSystem()
	if err := s.Terminate(context.Background(), pid); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	_ = cmd.Wait()

	time.Sleep(100 * time.Millisecond)
	if s.Alive(context.Background(), pid) {
		t.Fatal("expected process to be dead after Terminate")
	}
}

func TestSystemList_FindsChildCommandLine(t *testing.T) {
	cmd := exec.Command("sleep", "31")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	procs, err := NewSystem().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, p := range procs {
		if p.PID == int32(cmd.Process.Pid) {
			if p.Cmdline != "sleep 31" {
				t.Fatalf("unexpected command line %q", p.Cmdline)
			}
			return
		}
	}
	t.Fatal("child process not listed")
}
