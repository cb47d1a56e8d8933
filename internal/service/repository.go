// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler / CLI (delivery)  → parses input, renders output
//	Service (business)        → validates, filters, orders
//	Repository (data)         → talks to the GitHub API
//
// RepositoryService depends on repository.Directory (an interface), never on
// the go-github client directly. Tests inject an in-memory fake; main.go
// injects the real client.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/sakif/repo-showcase/internal/apperror"
	"github.com/sakif/repo-showcase/internal/model"
	"github.com/sakif/repo-showcase/internal/repository"
)

// Listing constants for the showcase query.
const (
	ShowcaseSort         = "updated" // remote-side sort key
	ShowcasePageSize     = 50
	MaxAccountNameLength = 39 // GitHub's login length limit
)

// accountNamePattern keeps the account safe to splice into a URL path segment.
var accountNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RepositoryService fetches and curates an account's repositories.
type RepositoryService struct {
	dir    repository.Directory
	logger *slog.Logger
}

// NewRepositoryService creates a new RepositoryService.
func NewRepositoryService(dir repository.Directory, logger *slog.Logger) *RepositoryService {
	return &RepositoryService{
		dir:    dir,
		logger: logger,
	}
}

// FetchRepositories returns the curated repositories of account.
//
// FLOW:
//  1. Validate the account name (no request is made for invalid input)
//  2. One request: sort=updated, per_page=50
//  3. Drop every repository whose name contains "."
//  4. Stable sort by star count, most popular first
//
// Errors from the directory keep their kind (NetworkError,
// RemoteServiceError, MalformedResponseError); they are wrapped with the
// account for context, never recovered from.
func (s *RepositoryService) FetchRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	account, err := validateAccount(account)
	if err != nil {
		return nil, err
	}

	repos, err := s.dir.ListAccountRepositories(ctx, account, repository.ListOptions{
		Sort:    ShowcaseSort,
		PerPage: ShowcasePageSize,
	})
	if err != nil {
		s.logger.Error("failed to fetch repositories",
			slog.String("account", account),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetching repositories for %s: %w", account, err)
	}

	curated := Curate(repos)

	s.logger.Info("repositories fetched",
		slog.String("account", account),
		slog.Int("received", len(repos)),
		slog.Int("kept", len(curated)),
	)

	return curated, nil
}

// AccountExists reports whether account can be looked up.
//
// Best effort: invalid names, non-success statuses and transport failures
// all come back as false. The error is logged, never returned.
func (s *RepositoryService) AccountExists(ctx context.Context, account string) bool {
	account, err := validateAccount(account)
	if err != nil {
		s.logger.Debug("account probe skipped", slog.String("error", err.Error()))
		return false
	}

	if err := s.dir.GetAccount(ctx, account); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, apperror.ErrRemoteService) {
			level = slog.LevelDebug // a 404 is an answer, not a failure
		}
		s.logger.Log(ctx, level, "account probe failed",
			slog.String("account", account),
			slog.String("error", err.Error()),
		)
		return false
	}

	return true
}

func validateAccount(account string) (string, error) {
	account = strings.TrimSpace(account)

	if account == "" {
		return "", apperror.ValidationFailed("account", "account name is required")
	}
	if len(account) > MaxAccountNameLength {
		return "", apperror.ValidationFailed("account",
			fmt.Sprintf("account name must be %d characters or less", MaxAccountNameLength))
	}
	if !accountNamePattern.MatchString(account) {
		return "", apperror.ValidationFailed("account",
			"account name may only contain letters, digits, '-' and '_'")
	}

	return account, nil
}
