// Package main is the entry point for the repository showcase web server.
//
// MAIN PACKAGE IN GO:
// The main package should be kept minimal. Its job is to:
// 1. Read configuration (env vars and an optional .env file)
// 2. Create dependencies (logger, GitHub client, service)
// 3. Start the application
//
// All actual logic lives in imported packages (internal/server,
// internal/service, internal/repository/github, ...).
package main

import (
	"log/slog"
	"os"

	"github.com/sakif/repo-showcase/internal/config"
	"github.com/sakif/repo-showcase/internal/repository/github"
	"github.com/sakif/repo-showcase/internal/server"
	"github.com/sakif/repo-showcase/internal/service"
)

func main() {
	// === 1. READ CONFIGURATION ===
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// === 2. SET UP LOGGING ===
	// Level comes from SHOWCASE_LOG_LEVEL (debug|info|warn|error).
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// === 3. BUILD THE DEPENDENCY CHAIN ===
	//   github.Client (repository.Directory) → RepositoryService → Server
	directory, err := github.New(cfg.GitHubAPIURL, cfg.HTTPClient(), logger)
	if err != nil {
		logger.Error("failed to create GitHub client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repoService := service.NewRepositoryService(directory, logger)

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		Account: cfg.Account,
	}, repoService, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
