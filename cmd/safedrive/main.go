// Command safedrive logs vehicle trips, vehicles and drivers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/cli"
	"github.com/custodia-labs/safedrive/internal/bootstrap"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetConnector(bootstrap.NewConnector())

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
