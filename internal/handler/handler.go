// Package handler contains HTTP request handlers for the showcase application.
//
// HANDLER RESPONSIBILITIES:
// 1. Parse the incoming HTTP request (query params, URL params)
// 2. Call the service
// 3. Write the HTTP response (status code, headers, body)
//
// Handlers hold no business rules: filtering, ordering and account
// validation all happen in internal/service.
package handler

import (
	"context"

	"github.com/sakif/repo-showcase/internal/model"
)

// RepositoryFinder is the slice of the service layer the handlers need.
// *service.RepositoryService satisfies it; tests use a stub.
type RepositoryFinder interface {
	FetchRepositories(ctx context.Context, account string) ([]model.Repository, error)
	AccountExists(ctx context.Context, account string) bool
}
