package memory

import (
	"fmt"
	"sync"
	"testing"

	"vaultsearch/internal/domain"
)

func buildIndex(root string, n int) *domain.Index {
	docs := make([]domain.Document, n)
	for i := range docs {
		docs[i] = domain.Document{
			ID:      i,
			Title:   fmt.Sprintf("%s-%d", root, i),
			Content: root,
		}
	}
	return domain.NewIndex(root, docs, domain.CrawlStats{})
}

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore()

	if s.Current() == nil {
		t.Fatal("expected non-nil index")
	}
	if s.Current().Len() != 0 {
		t.Errorf("expected empty index, got %d documents", s.Current().Len())
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	idx := buildIndex("/a", 3)

	s.Replace(idx)

	if s.Current() != idx {
		t.Error("expected replaced index to be current")
	}

	s.Replace(nil)
	if s.Current().Len() != 0 {
		t.Error("expected nil replace to clear the store")
	}
}

func TestStore_ConcurrentReadersNeverSeeTornIndex(t *testing.T) {
	s := NewStore()
	s.Replace(buildIndex("/a", 50))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				s.Replace(buildIndex("/b", 5))
			} else {
				s.Replace(buildIndex("/a", 50))
			}
		}
		close(stop)
	}()

	errs := make(chan error, 8)
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				idx := s.Current()
				for _, e := range idx.Entries() {
					doc, ok := idx.Get(e.ID)
					if !ok {
						errs <- fmt.Errorf("id %d missing from mapping", e.ID)
						return
					}
					if doc.Content != idx.VaultRoot() {
						errs <- fmt.Errorf("document %d from %s in index for %s", e.ID, doc.Content, idx.VaultRoot())
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
