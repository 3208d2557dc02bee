package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"primecount/cmd/primecount/commands"
	"primecount/internal/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		if errors.Is(err, engine.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
