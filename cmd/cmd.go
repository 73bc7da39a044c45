package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "traykeep",
		HelpName:              "traykeep",
		Usage:                 "keeps the clipboard tray running.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "traykeep [command] [options...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		// Exit codes are handled by main so tests can run the app.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []cli.Command{
			{
				Name:               "relaunch",
				Aliases:            []string{"r"},
				Usage:              "stop the running tray and start a new one",
				Description:        RelaunchDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             relaunch,
				Flags:              targetFlags,
			},
			{
				Name:               "install",
				Aliases:            []string{"i"},
				Usage:              "start the tray at login",
				Description:        InstallDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             install,
				Flags:              targetFlags,
			},
			{
				Name:               "uninstall",
				Usage:              "stop starting the tray at login",
				Description:        UninstallDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             uninstall,
				Flags:              targetFlags,
			},
			{
				Name:               "stop",
				Usage:              "stop the running tray",
				Description:        StopDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             stop,
				Flags:              stopFlags,
			},
			{
				Name:               "status",
				Aliases:            []string{"s"},
				Usage:              "show running instances and the login shortcut",
				Description:        StatusDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             status,
				Flags:              targetFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of traykeep",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:      relaunch,
		Flags:       targetFlags,
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
