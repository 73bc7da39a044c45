package cmd

import "time"

const (
	DEF_STOP_TIMEOUT = 5 * time.Second
	DEF_POLL         = 100 * time.Millisecond
)

const DESCRIPTION = `
traykeep keeps a single clipboard tray running. It stops any
instance that is already running, starts a fresh one without
a console window and can register the tray to start at login.
`

const (
	RelaunchDescription = `The relaunch command stops every running instance of
the tray script and starts a new one in the background.
It is the default when no command is given.

Example:
        traykeep
                OR
        traykeep relaunch --script clipboard-tray.py

`
	InstallDescription = `The install command writes a shortcut into the Startup
folder so the tray is launched through the interpreter
at every login. Running it again updates the shortcut.

Example:
        traykeep install
        traykeep install --interpreter-mode path --interpreter "C:\Python312\pythonw.exe"

`
	UninstallDescription = `The uninstall command removes the Startup folder shortcut.

Example:
        traykeep uninstall

`
	StopDescription = `The stop command terminates every running instance of the
tray script. With --wait it waits until they are gone.

Example:
        traykeep stop --wait --timeout 10s

`
	StatusDescription = `The status command lists running instances of the tray
script and reports whether the login shortcut exists.

Example:
        traykeep status

`
)
