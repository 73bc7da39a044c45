// Package common holds the environment variable names and product defaults
// shared by the traykeep command-line interface and its components.
package common

// Environment variable names for configuration.
const (
	// InterpreterEnv overrides the interpreter used to run the tray script.
	InterpreterEnv = "TRAYKEEP_INTERPRETER"

	// InterpreterModeEnv selects how the interpreter is resolved ("name" or "path").
	InterpreterModeEnv = "TRAYKEEP_INTERPRETER_MODE"

	// ScriptEnv is the file name of the managed tray script.
	ScriptEnv = "TRAYKEEP_SCRIPT"

	// ScriptDirEnv is the directory holding the managed tray script.
	ScriptDirEnv = "TRAYKEEP_SCRIPT_DIR"

	// StartupDirEnv overrides the per-user auto-start folder.
	StartupDirEnv = "TRAYKEEP_STARTUP_DIR"

	// ShortcutNameEnv overrides the file name of the startup shortcut.
	ShortcutNameEnv = "TRAYKEEP_SHORTCUT_NAME"

	// VerboseEnv enables informational log output on stderr.
	VerboseEnv = "TRAYKEEP_VERBOSE"

	// EventLogEnv mirrors log output to the Windows Event Log.
	EventLogEnv = "TRAYKEEP_EVENT_LOG"
)
