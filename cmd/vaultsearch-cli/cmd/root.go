package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vaultsearch/internal/application/commands"
	"vaultsearch/internal/bootstrap"
	"vaultsearch/internal/config"
)

var (
	cfgFile   string
	vaultPath string
	v         = config.NewViper()
	app       *bootstrap.Components
)

var rootCmd = &cobra.Command{
	Use:   "vaultsearch-cli",
	Short: "Browse, index and search Obsidian vaults",
	Long: `vaultsearch-cli indexes an Obsidian vault in memory and searches note
titles and contents, printing obsidian:// deep links for the matches.

Use "serve" to run the web interface, or search a vault directly with
"search", "tree", "link" and "open".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := readConfigFile(); err != nil {
			return err
		}
		app = bootstrap.New(config.Load(v), os.Stderr)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vaultsearch/config.yaml)")
	flags.StringVarP(&vaultPath, "vault", "v", "", "vault directory to index")
	flags.String("browse-root", v.GetString(config.KeyBrowseRoot), "directory browsing and vault selection are confined to")
	flags.Bool("allow-any-path", false, "allow browsing anywhere on the filesystem (unsafe)")
	flags.String("vault-name", "", "Obsidian vault name, enables vault+file deep links")
	flags.String("container-prefix", config.DefaultContainerPrefix, "path prefix as seen by this process")
	flags.String("host-prefix", "", "path prefix as seen by Obsidian on the host")
	flags.StringSlice("exclude", nil, "glob patterns of vault paths to skip (e.g. .obsidian/**)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.Bool("log-pretty", true, "human readable logs")
	flags.String("editor", "", "editor command for notes")

	bindFlags(map[string]string{
		config.KeyBrowseRoot:      "browse-root",
		config.KeyAllowAnyPath:    "allow-any-path",
		config.KeyVaultName:       "vault-name",
		config.KeyContainerPrefix: "container-prefix",
		config.KeyHostPrefix:      "host-prefix",
		config.KeyExclude:         "exclude",
		config.KeyLogLevel:        "log-level",
		config.KeyLogPretty:       "log-pretty",
		config.KeyEditor:          "editor",
	})
}

func bindFlags(keys map[string]string) {
	for key, flag := range keys {
		cobra.CheckErr(v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)))
	}
}

// readConfigFile loads the optional config file. A missing default file is not an error.
func readConfigFile() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(filepath.Join(home, ".config", "vaultsearch"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// selectVault indexes the --vault directory into the shared store
func selectVault(ctx context.Context) (*commands.SelectVaultResult, error) {
	if vaultPath == "" {
		return nil, fmt.Errorf("--vault is required")
	}

	cmd := commands.NewSelectVaultCommand(app.Guard, app.Crawler, app.Store, vaultPath)
	res, err := cmd.Execute(ctx)
	if err != nil {
		return nil, err
	}

	app.Log.LogVaultIndexed(res.Vault, res.Count, res.Stats.ReadFailures, res.Stats.Duration)
	return res, nil
}
