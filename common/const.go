package common

const (
	// DefaultScript is the tray application traykeep supervises.
	DefaultScript = "clipboard-tray.py"

	// DefaultShortcutName is the fixed name of the auto-start shortcut.
	// Only one registration may exist, so installs overwrite this file.
	DefaultShortcutName = "clipboard-tray.lnk"

	// DefaultInterpreterMode resolves the interpreter through PATH.
	DefaultInterpreterMode = "name"

	// EventSource is the Windows Event Log source name.
	EventSource = "traykeep"
)
