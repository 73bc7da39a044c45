//go:build !windows

package proctable

import (
	"os"
	"syscall"
)

// isProcessRunning checks liveness with signal 0, which performs the
// permission and existence checks without delivering a signal.
func isProcessRunning(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = p.Signal(syscall.Signal(0))
	return err == nil || err == syscall.EPERM
}
