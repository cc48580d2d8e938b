package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/adapters/tui"
	"vaultsearch/internal/adapters/tui/views"
	"vaultsearch/internal/bootstrap"
	"vaultsearch/internal/config"
)

func main() {
	// Logs would draw over the alt screen
	app := bootstrap.New(config.Load(config.NewViper()), nil)

	model := tui.NewApp(views.Deps{
		Guard:   app.Guard,
		Lister:  app.Lister,
		Crawler: app.Crawler,
		Store:   app.Store,
		Links:   app.Links,
		Opener:  app.Opener,
	}, app.Editor)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
