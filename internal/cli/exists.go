package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists <account>",
	Short: "Check whether a GitHub account exists",
	Long: `Prints true when the account can be looked up and false otherwise.
Network failures also print false.`,
	Args: cobra.ExactArgs(1),
	RunE: runExists,
}

func init() {
	rootCmd.AddCommand(existsCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	if repositoryService == nil {
		return errors.New("repository service not configured")
	}

	exists := repositoryService.AccountExists(cmd.Context(), args[0])
	_, err := fmt.Fprintln(cmd.OutOrStdout(), exists)
	return err
}
