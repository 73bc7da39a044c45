package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
)

func status(ctx *cli.Context) error {
	if err := rejectArgs(ctx); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return common.RuntimeErr(ctx, "status", "config", err)
	}
	log := newLogger(cfg)
	defer log.Close()

	procs, err := newSupervisor(log).Instances(context.Background(), cfg.target)
	if err != nil {
		return common.RuntimeErr(ctx, "status", "list", err)
	}
	if len(procs) == 0 {
		fmt.Printf("%s is not running\n", cfg.target.Script)
	} else {
		fmt.Printf("%s is running:\n", cfg.target.Script)
		for _, p := range procs {
			fmt.Printf("  PID %d\t%s\n", p.PID, p.Cmdline)
		}
	}

	in, err := newInstaller(cfg)
	if err != nil {
		fmt.Printf("Startup shortcut: unknown (%v)\n", err)
		return nil
	}
	ok, err := in.Installed()
	switch {
	case err != nil:
		fmt.Printf("Startup shortcut: unknown (%v)\n", err)
	case ok:
		fmt.Printf("Startup shortcut: installed (%s)\n", in.Path())
	default:
		fmt.Println("Startup shortcut: not installed")
	}
	return nil
}
