// Package cli implements the showcase command line tool.
//
// The commands are thin: they resolve the account, call the same
// RepositoryService the web server uses and print the result. Wiring
// happens in cmd/showcase via SetRepositoryService before Execute.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sakif/repo-showcase/internal/model"
)

// RepositoryFinder is what the commands need from the service layer.
type RepositoryFinder interface {
	FetchRepositories(ctx context.Context, account string) ([]model.Repository, error)
	AccountExists(ctx context.Context, account string) bool
}

var (
	repositoryService RepositoryFinder
	defaultAccount    string
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Browse a GitHub account's featured repositories",
	Long: `showcase lists the public repositories of a GitHub account the way the
showcase page does: dotted names are hidden and the most starred come first.`,
	SilenceUsage: true,
}

// SetRepositoryService injects the service and the account used when a
// command is given none.
func SetRepositoryService(svc RepositoryFinder, account string) {
	repositoryService = svc
	defaultAccount = account
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// resolveAccount picks the positional account or falls back to the default.
func resolveAccount(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return defaultAccount
}
