//go:build !windows

package supervisor

import (
	"os/exec"
	"syscall"
)

// setDetachAttrs puts the child in a new session so it has no controlling
// terminal and survives the launching shell.
func setDetachAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
