package commands

import (
	"context"
	"strings"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// SearchCommand searches the current vault index
type SearchCommand struct {
	store ports.IndexStore
	links ports.LinkBuilder
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.IndexStore, links ports.LinkBuilder, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		links: links,
		Query: query,
	}
}

// Execute runs the search against one snapshot of the index
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Search(c.store.Current(), c.Query, c.links), nil
}

// Search returns every document whose title or content contains query,
// ignoring case, in index order. A blank query matches nothing.
func Search(idx *domain.Index, query string, links ports.LinkBuilder) []domain.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []domain.SearchResult{}
	if q == "" {
		return results
	}

	for _, e := range idx.Entries() {
		doc, ok := idx.Get(e.ID)
		if !ok {
			continue
		}
		if !Matches(doc.Title, e.Text, q) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:      doc.ID,
			Title:   doc.Title,
			RelPath: doc.RelPath,
			AbsPath: doc.AbsPath,
			URI:     links.BuildURI(doc, idx.VaultRoot()),
		})
	}

	return results
}

// Matches reports whether the lowercased query occurs in title or text
func Matches(title, text, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(title), lowerQuery) ||
		strings.Contains(strings.ToLower(text), lowerQuery)
}
