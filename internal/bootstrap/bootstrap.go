// Package bootstrap wires the adapters every binary shares
package bootstrap

import (
	"io"

	"vaultsearch/internal/adapters/editor"
	"vaultsearch/internal/adapters/filesystem"
	"vaultsearch/internal/adapters/memory"
	"vaultsearch/internal/adapters/obsidian"
	"vaultsearch/internal/config"
	"vaultsearch/internal/logger"
)

// Components are the configured adapters of one process
type Components struct {
	Config  config.Config
	Log     *logger.Logger
	Guard   *filesystem.Guard
	Lister  *filesystem.Lister
	Crawler *filesystem.Crawler
	Store   *memory.Store
	Links   *obsidian.LinkBuilder
	Opener  *obsidian.Opener
	Editor  *editor.Opener
}

// New builds the components for cfg. Logs go to logOutput; nil discards them.
func New(cfg config.Config, logOutput io.Writer) *Components {
	log := logger.Nop()
	if logOutput != nil {
		log = logger.New(logger.Config{
			Level:  cfg.LogLevel,
			Pretty: cfg.LogPretty,
			Output: logOutput,
		})
	}

	guard := filesystem.NewGuard(cfg.BrowseRoot, cfg.AllowAnyPath)

	return &Components{
		Config:  cfg,
		Log:     log,
		Guard:   guard,
		Lister:  filesystem.NewLister(guard),
		Crawler: filesystem.NewCrawler(filesystem.WithExclude(cfg.Exclude...)),
		Store:   memory.NewStore(),
		Links:   obsidian.NewLinkBuilder(cfg.Links()),
		Opener:  obsidian.NewOpener(),
		Editor:  editor.NewOpener(cfg.Editor),
	}
}
