package ports

import "vaultsearch/internal/domain"

// LinkBuilder produces obsidian:// deep links for indexed documents
type LinkBuilder interface {
	// BuildURI returns the deep link for doc, given the root of the vault it was crawled from
	BuildURI(doc domain.Document, vaultRoot string) string
}

// URIOpener hands a URI to the operating system's handler
type URIOpener interface {
	OpenURI(uri string) error
}
