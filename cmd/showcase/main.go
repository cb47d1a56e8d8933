// Command showcase prints a GitHub account's featured repositories.
//
//	showcase list [account] [--json]
//	showcase exists <account>
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sakif/repo-showcase/internal/cli"
	"github.com/sakif/repo-showcase/internal/config"
	"github.com/sakif/repo-showcase/internal/repository/github"
	"github.com/sakif/repo-showcase/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays clean for --json.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	directory, err := github.New(cfg.GitHubAPIURL, cfg.HTTPClient(), logger)
	if err != nil {
		logger.Error("failed to create GitHub client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cli.SetRepositoryService(service.NewRepositoryService(directory, logger), cfg.Account)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
