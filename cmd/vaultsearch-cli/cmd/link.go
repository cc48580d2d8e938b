package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsearch/internal/application/commands"
)

var linkCmd = &cobra.Command{
	Use:   "link <file>",
	Short: "Print the obsidian:// link of a note",
	Long: `Print the deep link that opens a note in Obsidian.

The file may be absolute or relative to the vault.

Examples:
  vaultsearch-cli link --vault ~/Notes Projects/Plan.md
  vaultsearch-cli link --vault /vault --vault-name Notes /vault/Inbox.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := selectVault(ctx); err != nil {
			return err
		}

		note, err := commands.NewLocateNoteCommand(app.Store, app.Links, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), note.URI)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
