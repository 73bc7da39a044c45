package startup

import "errors"

// ErrUnsupported is returned where no shortcut facility exists.
var ErrUnsupported = errors.New("startup shortcuts are only supported on Windows")

// Shortcut is the launch description persisted in the auto-start folder.
type Shortcut struct {
	// Target is the executable the shortcut runs: a bare name resolved on
	// PATH or an absolute path.
	Target string
	// Arguments is the argument string passed to Target.
	Arguments string
	// WorkingDirectory is the directory Target starts in.
	WorkingDirectory string
}

// Writer persists a shortcut at path, replacing any existing file.
type Writer interface {
	Write(path string, s Shortcut) error
}
