package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/traykeep/traykeep/cmd/common"
)

var pollInterval = DEF_POLL

func stop(ctx *cli.Context) error {
	if err := rejectArgs(ctx); err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return common.RuntimeErr(ctx, "stop", "config", err)
	}
	log := newLogger(cfg)
	defer log.Close()

	sup := newSupervisor(log)
	report, err := sup.Stop(context.Background(), cfg.target)
	if err != nil {
		return common.RuntimeErr(ctx, "stop", "target", err)
	}
	if report.NoMatch() {
		fmt.Printf("%s is not running\n", cfg.target.Script)
		return nil
	}
	pids := report.Terminated()
	if len(pids) == 0 {
		return common.RuntimeErr(ctx, "stop", "terminate", report.FailedErr())
	}

	if ctx.Bool("wait") {
		sctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		p := common.NewProgress(os.Stderr)
		bar := common.NewWaitBar(p, "Stopping", len(pids))
		err = sup.WaitGone(sctx, pids, ctx.Duration("timeout"), pollInterval, func(int32) {
			bar.Increment()
		})
		if err != nil {
			bar.Abort(false)
		}
		p.Wait()
		if err != nil {
			return common.RuntimeErr(ctx, "stop", "wait", err)
		}
	}
	fmt.Printf("%s stopped\n", cfg.target.Script)
	return nil
}
