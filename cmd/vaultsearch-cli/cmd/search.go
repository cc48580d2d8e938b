package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsearch/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a vault",
	Long: `Index the vault and print every note whose title or content contains
the query, ignoring case.

Each line shows the title, the vault-relative path and the deep link.

Examples:
  vaultsearch-cli search --vault ~/Notes meeting
  vaultsearch-cli search -v ~/Notes "project plan"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := selectVault(ctx); err != nil {
			return err
		}

		results, err := commands.NewSearchCommand(app.Store, app.Links, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%s\t%s\t%s\n", r.Title, r.RelPath, r.URI)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
