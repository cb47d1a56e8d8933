package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/repo-showcase/internal/model"
	"github.com/sakif/repo-showcase/internal/presenter"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [account]",
	Short: "List an account's featured repositories",
	Long: `Fetches the account's 50 most recently updated repositories, hides
those with a dot in their name and prints the rest by star count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output repositories as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if repositoryService == nil {
		return errors.New("repository service not configured")
	}

	account := resolveAccount(args)
	repos, err := repositoryService.FetchRepositories(cmd.Context(), account)
	if err != nil {
		return fmt.Errorf("listing repositories: %w", err)
	}

	if listJSON {
		return outputListJSON(cmd, repos)
	}
	return outputListCards(cmd, account, repos)
}

func outputListJSON(cmd *cobra.Command, repos []model.Repository) error {
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func outputListCards(cmd *cobra.Command, account string, repos []model.Repository) error {
	out := cmd.OutOrStdout()

	if len(repos) == 0 {
		_, err := fmt.Fprintf(out, "No projects to show for %s.\n", account)
		return err
	}

	if _, err := fmt.Fprintln(out, renderHeading(fmt.Sprintf("Featured Projects (%d)", len(repos)))); err != nil {
		return err
	}
	for _, card := range presenter.NewCards(repos) {
		if _, err := fmt.Fprintln(out, renderCard(card)); err != nil {
			return err
		}
	}
	return nil
}
