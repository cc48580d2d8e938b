package commands

import (
	"context"
	"fmt"

	"vaultsearch/internal/application"
	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// SelectVaultResult reports the outcome of a vault selection
type SelectVaultResult struct {
	Vault string
	Count int
	Stats domain.CrawlStats
}

// SelectVaultCommand indexes a directory and installs it as the current vault
type SelectVaultCommand struct {
	guard   ports.PathGuard
	crawler ports.VaultCrawler
	store   ports.IndexStore
	Path    string
}

// NewSelectVaultCommand creates a new SelectVaultCommand
func NewSelectVaultCommand(guard ports.PathGuard, crawler ports.VaultCrawler, store ports.IndexStore, path string) *SelectVaultCommand {
	return &SelectVaultCommand{
		guard:   guard,
		crawler: crawler,
		store:   store,
		Path:    path,
	}
}

// Execute validates the path, crawls it and publishes the new index.
// On any error the current index is left untouched.
func (c *SelectVaultCommand) Execute(ctx context.Context) (*SelectVaultResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	vault, err := resolveDirectory(c.guard, c.Path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := c.crawler.Crawl(vault)
	if err != nil {
		if classified := classifyFSError(vault, err); classified != err {
			return nil, classified
		}
		return nil, fmt.Errorf("failed to index vault: %w", err)
	}

	c.store.Replace(idx)

	return &SelectVaultResult{
		Vault: idx.VaultRoot(),
		Count: idx.Len(),
		Stats: idx.Stats(),
	}, nil
}
