package application

import "vaultsearch/internal/domain"

// Re-export domain types for use by adapters
type (
	SearchResult = domain.SearchResult
	Listing      = domain.Listing
)
