// Package main is the entry point for the rabbitconf CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rabbitconf/rabbitconf/cmd/rabbitconf/commands"
	"github.com/rabbitconf/rabbitconf/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the context on interrupt so watch loops shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, version, commit, date); err != nil {
		logging.Errorf("%v", err)
		return 1
	}
	return 0
}
