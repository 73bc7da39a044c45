package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
)

func install(ctx *cli.Context) error {
	if err := rejectArgs(ctx); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return common.RuntimeErr(ctx, "install", "config", err)
	}
	log := newLogger(cfg)
	defer log.Close()

	in, err := newInstaller(cfg)
	if err != nil {
		return common.RuntimeErr(ctx, "install", "startup_folder", err)
	}
	res, err := in.Install(cfg.target.ScriptDir, cfg.target.Script)
	if err != nil {
		log.Error("install shortcut: %v", err)
		return common.RuntimeErr(ctx, "install", "write", err)
	}
	log.Info("wrote %s: %s %s (in %s)", res.Path, res.Shortcut.Target, res.Shortcut.Arguments, res.Shortcut.WorkingDirectory)
	fmt.Println("Startup shortcut updated")
	return nil
}

func uninstall(ctx *cli.Context) error {
	if err := rejectArgs(ctx); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return common.RuntimeErr(ctx, "uninstall", "config", err)
	}
	log := newLogger(cfg)
	defer log.Close()

	in, err := newInstaller(cfg)
	if err != nil {
		return common.RuntimeErr(ctx, "uninstall", "startup_folder", err)
	}
	if err := in.Uninstall(); err != nil {
		return common.RuntimeErr(ctx, "uninstall", "remove", err)
	}
	log.Info("removed %s", in.Path())
	fmt.Println("Startup shortcut removed")
	return nil
}
