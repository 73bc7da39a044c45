package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
	"github.com/traykeep/traykeep/internal/supervisor"
)

// rejectArgs reports stray positional arguments as a usage error.
func rejectArgs(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return nil
	}
	err := fmt.Errorf("unexpected argument %q", ctx.Args().First())
	if ctx.Command.Name == "" {
		return common.PrintErrWithHelp(ctx, err)
	}
	return common.PrintErrWithCmdHelp(ctx, err)
}

func relaunch(ctx *cli.Context) error {
	if err := rejectArgs(ctx); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return common.RuntimeErr(ctx, "relaunch", "config", err)
	}
	log := newLogger(cfg)
	defer log.Close()

	_, err = newSupervisor(log).Relaunch(context.Background(), cfg.target)
	if err != nil {
		action := "spawn"
		if errors.Is(err, supervisor.ErrInvalidTarget) {
			action = "target"
		}
		return common.RuntimeErr(ctx, "relaunch", action, err)
	}
	fmt.Printf("%s restarted\n", cfg.target.Script)
	return nil
}
