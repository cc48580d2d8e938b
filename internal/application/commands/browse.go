package commands

import (
	"context"
	"strings"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// ListDirectoryCommand lists one directory of the vault picker
type ListDirectoryCommand struct {
	guard  ports.PathGuard
	lister ports.DirectoryLister
	Path   string
}

// NewListDirectoryCommand creates a new ListDirectoryCommand.
// An empty path lists the browse root.
func NewListDirectoryCommand(guard ports.PathGuard, lister ports.DirectoryLister, path string) *ListDirectoryCommand {
	return &ListDirectoryCommand{
		guard:  guard,
		lister: lister,
		Path:   path,
	}
}

// Execute runs the listing
func (c *ListDirectoryCommand) Execute(ctx context.Context) (*domain.Listing, error) {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		path = c.guard.Root()
	}

	dir, err := resolveDirectory(c.guard, path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listing, err := c.lister.List(dir)
	if err != nil {
		return nil, classifyFSError(dir, err)
	}
	return listing, nil
}
