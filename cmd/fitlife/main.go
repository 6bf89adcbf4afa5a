package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dianagomez24/FrontFilLife/cmd/fitlife/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cmd.Message(err))
		stop()
		os.Exit(1)
	}
}
