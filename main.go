// main is the entry point for the mktcalc CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/mktcalc/cmd"
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.SetEvaluator(core.NewService())
	err := cmd.Execute(ctx)
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Cannot stop profiling", perr)
	}
	if err != nil {
		stop()
		contract.LogFatal("Command failed", err)
	}
}
