package supervisor

import (
	"fmt"
	"os/exec"
)

// Command describes a process to start.
type Command struct {
	// Path is an executable name looked up on PATH or an absolute path.
	Path string
	Args []string
	Dir  string
}

// Spawner starts processes without waiting for them.
type Spawner interface {
	Spawn(c Command) (pid int, err error)
}

// ExecSpawner starts detached, windowless processes through os/exec.
type ExecSpawner struct{}

// NewExecSpawner returns the os/exec backed Spawner.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{}
}

// Spawn starts c detached from the caller's console with stdio bound to the
// null device, then releases the process handle.
func (s *ExecSpawner) Spawn(c Command) (int, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	setDetachAttrs(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", c.Path, err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

var _ Spawner = (*ExecSpawner)(nil)
