package memory

import (
	"sync/atomic"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// Store implements ports.IndexStore with a single atomic pointer.
// Readers always see one complete snapshot; Replace is last-write-wins.
type Store struct {
	current atomic.Pointer[domain.Index]
}

// Ensure Store implements IndexStore
var _ ports.IndexStore = (*Store)(nil)

// NewStore creates a store holding an empty index
func NewStore() *Store {
	s := &Store{}
	s.current.Store(domain.EmptyIndex())
	return s
}

// Current returns the published snapshot
func (s *Store) Current() *domain.Index {
	if idx := s.current.Load(); idx != nil {
		return idx
	}
	return domain.EmptyIndex()
}

// Replace publishes idx; a nil idx clears the store
func (s *Store) Replace(idx *domain.Index) {
	if idx == nil {
		idx = domain.EmptyIndex()
	}
	s.current.Store(idx)
}
