package supervisor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidTarget is returned when a Target cannot describe a launchable
// script.
var ErrInvalidTarget = errors.New("invalid target")

// ResolveMode selects how the interpreter location is interpreted.
type ResolveMode int

const (
	// ByName looks the interpreter up on the executable search path. The
	// resulting launch command is portable across machines that have the
	// interpreter on PATH.
	ByName ResolveMode = iota
	// ByPath uses an absolute interpreter path as-is.
	ByPath
)

func (m ResolveMode) String() string {
	switch m {
	case ByName:
		return "name"
	case ByPath:
		return "path"
	default:
		return fmt.Sprintf("ResolveMode(%d)", int(m))
	}
}

// ParseResolveMode parses "name" or "path".
func ParseResolveMode(s string) (ResolveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return ByName, nil
	case "path":
		return ByPath, nil
	}
	return ByName, fmt.Errorf("%w: unknown interpreter mode %q (want name or path)", ErrInvalidTarget, s)
}

// Interpreter is the program that runs the managed script.
type Interpreter struct {
	Location string
	Mode     ResolveMode
}

// Validate checks that Location matches Mode.
func (i Interpreter) Validate() error {
	if i.Location == "" {
		return fmt.Errorf("%w: interpreter is empty", ErrInvalidTarget)
	}
	switch i.Mode {
	case ByName:
		if strings.ContainsAny(i.Location, `/\`) {
			return fmt.Errorf("%w: interpreter %q is a path, use path mode", ErrInvalidTarget, i.Location)
		}
	case ByPath:
		if !filepath.IsAbs(i.Location) {
			return fmt.Errorf("%w: interpreter %q is not an absolute path", ErrInvalidTarget, i.Location)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTarget, i.Mode)
	}
	return nil
}

// Target identifies the script that should be running.
type Target struct {
	Interpreter Interpreter
	// ScriptDir is the directory holding the script. It is also the
	// working directory of the launched process.
	ScriptDir string
	// Script is the script file name, e.g. "clipboard-tray.py".
	Script string
}

// Validate checks the interpreter and the script fields.
func (t Target) Validate() error {
	if err := t.Interpreter.Validate(); err != nil {
		return err
	}
	if t.Script == "" {
		return fmt.Errorf("%w: script is empty", ErrInvalidTarget)
	}
	if t.ScriptDir == "" {
		return fmt.Errorf("%w: script directory is empty", ErrInvalidTarget)
	}
	return nil
}

// ScriptPath returns the absolute path of the script.
func (t Target) ScriptPath() (string, error) {
	p, err := filepath.Abs(filepath.Join(t.ScriptDir, t.Script))
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	return p, nil
}

// Pattern is the command-line substring that identifies a running instance:
// the script's file name.
func (t Target) Pattern() string {
	return filepath.Base(t.Script)
}
