package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultsearch/internal/adapters/treeview"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the notes of a vault as a tree",
	Long: `Index the vault and print every note under its directory.

Example:
  vaultsearch-cli tree --vault ~/Notes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := selectVault(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), treeview.FromIndex(app.Store.Current()).Render())
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d notes\n", res.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
