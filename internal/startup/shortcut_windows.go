//go:build windows

package startup

import (
	"errors"
	"fmt"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the thread. The matching CoUninitialize is still required.
const sFalse = 0x00000001

// ShellWriter writes .lnk files through the WScript.Shell automation object.
type ShellWriter struct{}

// NewWriter returns the platform shortcut writer.
func NewWriter() Writer {
	return &ShellWriter{}
}

// Write creates or overwrites the shortcut at path.
func (w *ShellWriter) Write(path string, s Shortcut) error {
	// COM apartments are per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("query WScript.Shell: %w", err)
	}
	defer shell.Release()

	created, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return fmt.Errorf("create shortcut %s: %w", path, err)
	}
	link := created.ToIDispatch()
	defer link.Release()

	props := []struct {
		name  string
		value string
	}{
		{"TargetPath", s.Target},
		{"Arguments", s.Arguments},
		{"WorkingDirectory", s.WorkingDirectory},
	}
	for _, p := range props {
		if _, err := oleutil.PutProperty(link, p.name, p.value); err != nil {
			return fmt.Errorf("set %s: %w", p.name, err)
		}
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("save shortcut %s: %w", path, err)
	}
	return nil
}
