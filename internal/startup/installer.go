// Package startup registers the supervised script to run at user login by
// placing a shortcut in the per-user auto-start folder.
package startup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/traykeep/traykeep/internal/supervisor"
)

// ErrNoStartupFolder is returned when the auto-start folder is unknown or
// missing.
var ErrNoStartupFolder = errors.New("startup folder not available")

// Installer creates and removes the auto-start shortcut.
type Installer struct {
	// Fs is used to check the folder and remove the shortcut.
	Fs afero.Fs
	// Writer persists the shortcut file.
	Writer Writer
	// Folder is the auto-start folder.
	Folder string
	// Name is the shortcut file name inside Folder.
	Name string
	// Interpreter is written as the shortcut target exactly as configured.
	Interpreter supervisor.Interpreter
}

// Result describes a persisted registration.
type Result struct {
	Path     string
	Shortcut Shortcut
}

// Path returns the full path of the shortcut file.
func (in *Installer) Path() string {
	return filepath.Join(in.Folder, in.Name)
}

func (in *Installer) validate() error {
	if in.Folder == "" {
		return ErrNoStartupFolder
	}
	if in.Name == "" || strings.ContainsAny(in.Name, `/\`) {
		return fmt.Errorf("invalid shortcut name %q", in.Name)
	}
	if !strings.EqualFold(filepath.Ext(in.Name), ".lnk") {
		return fmt.Errorf("invalid shortcut name %q: must end in .lnk", in.Name)
	}
	return nil
}

// Build returns the shortcut that launches scriptFile from scriptDir.
// Arguments hold the absolute script path, quoted when it has spaces. A
// relative scriptDir is resolved against the current directory.
func (in *Installer) Build(scriptDir, scriptFile string) (Shortcut, error) {
	if scriptDir != "" {
		abs, err := filepath.Abs(scriptDir)
		if err != nil {
			return Shortcut{}, fmt.Errorf("resolve script directory: %w", err)
		}
		scriptDir = abs
	}
	t := supervisor.Target{Interpreter: in.Interpreter, ScriptDir: scriptDir, Script: scriptFile}
	if err := t.Validate(); err != nil {
		return Shortcut{}, err
	}
	scriptPath, err := t.ScriptPath()
	if err != nil {
		return Shortcut{}, err
	}
	args := scriptPath
	if strings.ContainsAny(args, " \t") {
		args = `"` + args + `"`
	}
	return Shortcut{
		Target:           in.Interpreter.Location,
		Arguments:        args,
		WorkingDirectory: scriptDir,
	}, nil
}

// Install writes the shortcut, overwriting any previous registration.
// Running it twice with the same inputs produces the same shortcut.
func (in *Installer) Install(scriptDir, scriptFile string) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	info, err := in.Fs.Stat(in.Folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStartupFolder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoStartupFolder, in.Folder)
	}

	s, err := in.Build(scriptDir, scriptFile)
	if err != nil {
		return nil, err
	}
	path := in.Path()
	if err := in.Writer.Write(path, s); err != nil {
		return nil, fmt.Errorf("write shortcut %s: %w", path, err)
	}
	return &Result{Path: path, Shortcut: s}, nil
}

// Uninstall removes the shortcut. A missing shortcut is not an error.
func (in *Installer) Uninstall() error {
	if err := in.validate(); err != nil {
		return err
	}
	err := in.Fs.Remove(in.Path())
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("remove shortcut: %w", err)
}

// Installed reports whether the shortcut file exists.
func (in *Installer) Installed() (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}
	return afero.Exists(in.Fs, in.Path())
}
