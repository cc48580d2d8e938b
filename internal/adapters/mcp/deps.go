package mcp

import (
	"vaultsearch/internal/logger"
	"vaultsearch/internal/ports"
)

// Deps are the collaborators the MCP tools drive
type Deps struct {
	Guard   ports.PathGuard
	Lister  ports.DirectoryLister
	Crawler ports.VaultCrawler
	Store   ports.IndexStore
	Links   ports.LinkBuilder
	Log     *logger.Logger
}

func (d Deps) log() *logger.Logger {
	if d.Log == nil {
		return logger.Nop()
	}
	return d.Log
}
