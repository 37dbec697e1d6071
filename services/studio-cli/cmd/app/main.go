package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"courseplatform/services/studio-cli/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(&cli.App{}).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
