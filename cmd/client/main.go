package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/medkeeper/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Ctrl+C прерывает синхронизацию между записями
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})
	if err != nil {
		// cobra уже напечатал ошибку
		stop()
		os.Exit(1)
	}
}
