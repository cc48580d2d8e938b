package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"vaultsearch/internal/adapters/httpapi"
	"vaultsearch/internal/config"
	"vaultsearch/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface",
	Long: `Serve the browse and search web interface.

Pick a vault folder in the browser, then search it. Results link straight
into Obsidian through obsidian:// URLs. With --vault the vault is indexed
before the server starts.

Examples:
  vaultsearch-cli serve
  vaultsearch-cli serve --port 8080 --vault ~/Notes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.New()
		if vaultPath != "" {
			res, err := selectVault(ctx)
			if err != nil {
				return err
			}
			m.RecordVaultSelection(res.Count, res.Stats.ReadFailures, res.Stats.Duration)
		}

		srv, err := httpapi.NewServer(httpapi.Deps{
			Guard:   app.Guard,
			Lister:  app.Lister,
			Crawler: app.Crawler,
			Store:   app.Store,
			Links:   app.Links,
			Metrics: m,
			Log:     app.Log,
		})
		if err != nil {
			return err
		}

		addr := net.JoinHostPort(v.GetString(config.KeyHost), strconv.Itoa(v.GetInt(config.KeyPort)))
		fmt.Fprintf(cmd.ErrOrStderr(), "Open http://%s\n", addr)
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("host", config.DefaultHost, "address to listen on")
	serveCmd.Flags().Int("port", config.DefaultPort, "port to listen on")
	cobra.CheckErr(v.BindPFlag(config.KeyHost, serveCmd.Flags().Lookup("host")))
	cobra.CheckErr(v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port")))

	rootCmd.AddCommand(serveCmd)
}
