package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/patent-dev/uspto-odp/cmd/odp/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	commands.ExecuteContext(ctx)
}
