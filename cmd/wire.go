package cmd

import (
	"os"

	"github.com/spf13/afero"

	"github.com/traykeep/traykeep/internal/proctable"
	"github.com/traykeep/traykeep/internal/startup"
	"github.com/traykeep/traykeep/internal/supervisor"
	"github.com/traykeep/traykeep/pkg/logger"
)

// Constructors for the system-facing components. Tests replace them.
var (
	newTable          = func() proctable.Table { return proctable.NewSystem() }
	newSpawner        = func() supervisor.Spawner { return supervisor.NewExecSpawner() }
	newShortcutWriter = startup.NewWriter
	startupFolder     = startup.Folder
	appFs             = afero.NewOsFs()
)

func newLogger(cfg *config) logger.Logger {
	console := logger.NewConsoleLogger(os.Stderr, cfg.verbose)
	if !cfg.eventLog {
		return console
	}
	return withEventLog(console)
}

func newSupervisor(log logger.Logger) *supervisor.Supervisor {
	return supervisor.New(newTable(), newSpawner(), supervisor.WithLogger(log))
}

func newInstaller(cfg *config) (*startup.Installer, error) {
	folder := cfg.startupDir
	if folder == "" {
		var err error
		folder, err = startupFolder()
		if err != nil {
			return nil, err
		}
	}
	return &startup.Installer{
		Fs:          appFs,
		Writer:      newShortcutWriter(),
		Folder:      folder,
		Name:        cfg.shortcutName,
		Interpreter: cfg.target.Interpreter,
	}, nil
}
