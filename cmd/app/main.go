package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"procurement/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		log.Fatalf("procurement: %v", err)
	}
}
