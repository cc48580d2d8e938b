package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsearch/internal/application/commands"
)

var editFlag bool

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a note in Obsidian",
	Long: `Hand the note's deep link to the operating system, which opens it in
Obsidian. With --edit the note opens in $EDITOR instead.

Examples:
  vaultsearch-cli open --vault ~/Notes Inbox.md
  vaultsearch-cli open --vault ~/Notes --edit Inbox.md`,
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

		if editFlag {
			return app.Editor.OpenFile(note.AbsPath)
		}

		if err := app.Opener.OpenURI(note.URI); err != nil {
			return fmt.Errorf("opening %s: %w", note.URI, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", note.Title)
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVarP(&editFlag, "edit", "e", false, "open in $EDITOR instead of Obsidian")
	rootCmd.AddCommand(openCmd)
}
