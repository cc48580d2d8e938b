package commands

import (
	"context"
	"path/filepath"

	"vaultsearch/internal/application"
	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// LocateNoteCommand finds a note of the current index by its file path
type LocateNoteCommand struct {
	store ports.IndexStore
	links ports.LinkBuilder
	Path  string
}

// NewLocateNoteCommand creates a new LocateNoteCommand.
// Relative paths are taken relative to the vault root.
func NewLocateNoteCommand(store ports.IndexStore, links ports.LinkBuilder, path string) *LocateNoteCommand {
	return &LocateNoteCommand{
		store: store,
		links: links,
		Path:  path,
	}
}

// Execute returns the note as a search result carrying its deep link
func (c *LocateNoteCommand) Execute(ctx context.Context) (*domain.SearchResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := c.store.Current()
	if idx.VaultRoot() == "" {
		return nil, application.ErrNoVault
	}

	target := c.Path
	if !filepath.IsAbs(target) {
		target = filepath.Join(idx.VaultRoot(), target)
	}
	target = filepath.Clean(target)
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	for _, doc := range idx.Documents() {
		if doc.AbsPath == target || filepath.Join(idx.VaultRoot(), doc.RelPath) == target {
			return &domain.SearchResult{
				ID:      doc.ID,
				Title:   doc.Title,
				RelPath: doc.RelPath,
				AbsPath: doc.AbsPath,
				URI:     c.links.BuildURI(doc, idx.VaultRoot()),
			}, nil
		}
	}

	return nil, &application.DocumentError{RawID: c.Path, Err: application.ErrNotFound}
}
