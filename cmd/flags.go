package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/common"
	"github.com/traykeep/traykeep/internal/supervisor"
)

var (
	targetFlags = []cli.Flag{
		cli.StringFlag{
			Name:   "interpreter",
			Usage:  "interpreter that runs the tray script",
			Value:  common.DefaultInterpreter,
			EnvVar: common.InterpreterEnv,
		},
		cli.StringFlag{
			Name:   "interpreter-mode",
			Usage:  `how to resolve the interpreter: "name" (search PATH) or "path" (absolute path)`,
			Value:  common.DefaultInterpreterMode,
			EnvVar: common.InterpreterModeEnv,
		},
		cli.StringFlag{
			Name:   "script",
			Usage:  "file name of the tray script",
			Value:  common.DefaultScript,
			EnvVar: common.ScriptEnv,
		},
		cli.StringFlag{
			Name:   "script-dir",
			Usage:  "directory holding the script (default: the directory of traykeep)",
			EnvVar: common.ScriptDirEnv,
		},
		cli.StringFlag{
			Name:   "startup-dir",
			Usage:  "auto-start folder (default: the user's Startup folder)",
			EnvVar: common.StartupDirEnv,
		},
		cli.StringFlag{
			Name:   "shortcut-name",
			Usage:  "file name of the login shortcut",
			Value:  common.DefaultShortcutName,
			EnvVar: common.ShortcutNameEnv,
		},
		cli.BoolFlag{
			Name:   "verbose",
			Usage:  "log every step to stderr",
			EnvVar: common.VerboseEnv,
		},
		cli.BoolFlag{
			Name:   "event-log",
			Usage:  "also log to the Windows Event Log",
			EnvVar: common.EventLogEnv,
		},
	}

	stopFlags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "wait, w",
			Usage: "wait until the stopped processes have exited",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "how long --wait waits",
			Value: DEF_STOP_TIMEOUT,
		},
	}, targetFlags...)
)

// executableDir is the default script directory.
var executableDir = func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

type config struct {
	target       supervisor.Target
	startupDir   string
	shortcutName string
	verbose      bool
	eventLog     bool
}

// lookupString prefers a value given after the command name and falls back
// to one given before it.
func lookupString(ctx *cli.Context, name string) string {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalString(name)
	}
	return ctx.String(name)
}

func lookupBool(ctx *cli.Context, name string) bool {
	if !ctx.IsSet(name) && ctx.GlobalIsSet(name) {
		return ctx.GlobalBool(name)
	}
	return ctx.Bool(name)
}

func loadConfig(ctx *cli.Context) (*config, error) {
	mode, err := supervisor.ParseResolveMode(lookupString(ctx, "interpreter-mode"))
	if err != nil {
		return nil, err
	}
	dir := lookupString(ctx, "script-dir")
	if dir == "" {
		dir, err = executableDir()
		if err != nil {
			return nil, fmt.Errorf("locate script directory: %w", err)
		}
	}
	return &config{
		target: supervisor.Target{
			Interpreter: supervisor.Interpreter{
				Location: lookupString(ctx, "interpreter"),
				Mode:     mode,
			},
			ScriptDir: dir,
			Script:    lookupString(ctx, "script"),
		},
		startupDir:   lookupString(ctx, "startup-dir"),
		shortcutName: lookupString(ctx, "shortcut-name"),
		verbose:      lookupBool(ctx, "verbose"),
		eventLog:     lookupBool(ctx, "event-log"),
	}, nil
}
