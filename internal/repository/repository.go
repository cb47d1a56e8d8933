// Package repository declares the data-layer interfaces the services depend on.
//
// The only data source of this application is the GitHub REST API, reached
// through the Directory interface. The concrete implementation lives in
// internal/repository/github; services and tests only see this interface.
package repository

import (
	"context"

	"github.com/sakif/repo-showcase/internal/model"
)

// ListOptions controls the remote-side ordering and page size of a listing.
type ListOptions struct {
	Sort    string // remote sort key, e.g. "updated"
	PerPage int
}

// Directory is a remote directory of accounts and their repositories.
//
// Implementations report failures with the apperror taxonomy:
// NetworkError, RemoteServiceError or MalformedResponseError.
type Directory interface {
	// ListAccountRepositories performs exactly one request for one page.
	ListAccountRepositories(ctx context.Context, account string, opts ListOptions) ([]model.Repository, error)

	// GetAccount returns nil when the account lookup succeeds.
	// The response body is not inspected.
	GetAccount(ctx context.Context, account string) error
}
