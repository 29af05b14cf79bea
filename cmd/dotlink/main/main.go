package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/dotlink/cmd/dotlink"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := dotlink.Run(ctx, dotlink.NewRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}
