package commands

import (
	"context"

	"vaultsearch/internal/application"
	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// OpenDocumentCommand fetches one document of the current index by id
type OpenDocumentCommand struct {
	store ports.IndexStore
	RawID string
}

// NewOpenDocumentCommand creates a new OpenDocumentCommand
func NewOpenDocumentCommand(store ports.IndexStore, rawID string) *OpenDocumentCommand {
	return &OpenDocumentCommand{
		store: store,
		RawID: rawID,
	}
}

// Execute returns the document, ErrInvalidID for malformed ids or ErrNotFound
func (c *OpenDocumentCommand) Execute(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := application.ParseDocumentID(c.RawID)
	if err != nil {
		return nil, err
	}

	doc, ok := c.store.Current().Get(id)
	if !ok {
		return nil, &application.DocumentError{RawID: c.RawID, Err: application.ErrNotFound}
	}
	return &doc, nil
}

// VaultInfo describes the currently selected vault
type VaultInfo struct {
	Vault string            `json:"vault"`
	Count int               `json:"count"`
	Stats domain.CrawlStats `json:"-"`
}

// VaultInfoCommand reports the current vault
type VaultInfoCommand struct {
	store ports.IndexStore
}

// NewVaultInfoCommand creates a new VaultInfoCommand
func NewVaultInfoCommand(store ports.IndexStore) *VaultInfoCommand {
	return &VaultInfoCommand{store: store}
}

// Execute returns ErrNoVault until a vault has been selected
func (c *VaultInfoCommand) Execute(ctx context.Context) (*VaultInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := c.store.Current()
	if idx.VaultRoot() == "" {
		return nil, application.ErrNoVault
	}
	return &VaultInfo{
		Vault: idx.VaultRoot(),
		Count: idx.Len(),
		Stats: idx.Stats(),
	}, nil
}
