package ports

import "vaultsearch/internal/domain"

// VaultCrawler builds an index snapshot from a vault directory.
// Implementations perform no permission checks; callers gate paths first.
type VaultCrawler interface {
	Crawl(root string) (*domain.Index, error)
}

// IndexStore owns the process-wide index snapshot.
// Current never returns nil; Replace publishes a fully built snapshot in one step.
type IndexStore interface {
	Current() *domain.Index
	Replace(idx *domain.Index)
}
