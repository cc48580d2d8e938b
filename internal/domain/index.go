package domain

// Index is an immutable snapshot of one crawled vault.
//
// The id mapping and the ordered entry list are built together and never
// mutated afterwards, so a reader holding an *Index always sees both halves
// of the same crawl.
type Index struct {
	vaultRoot string
	docs      map[int]Document
	entries   []Entry
	stats     CrawlStats
}

// NewIndex builds an index from documents in crawl order.
// Ids are taken from the documents; a duplicate id keeps the first document.
func NewIndex(vaultRoot string, docs []Document, stats CrawlStats) *Index {
	idx := &Index{
		vaultRoot: vaultRoot,
		docs:      make(map[int]Document, len(docs)),
		entries:   make([]Entry, 0, len(docs)),
		stats:     stats,
	}
	for _, d := range docs {
		if _, dup := idx.docs[d.ID]; dup {
			continue
		}
		idx.docs[d.ID] = d
		idx.entries = append(idx.entries, Entry{ID: d.ID, Text: d.Content})
	}
	idx.stats.NotesIndexed = len(idx.entries)
	return idx
}

// EmptyIndex returns an index with no vault and no documents
func EmptyIndex() *Index {
	return NewIndex("", nil, CrawlStats{})
}

// VaultRoot returns the absolute vault path the index was crawled from
func (idx *Index) VaultRoot() string {
	if idx == nil {
		return ""
	}
	return idx.vaultRoot
}

// Len returns the number of indexed documents
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Get returns the document with the given id
func (idx *Index) Get(id int) (Document, bool) {
	if idx == nil {
		return Document{}, false
	}
	d, ok := idx.docs[id]
	return d, ok
}

// Entries returns a copy of the scan order
func (idx *Index) Entries() []Entry {
	if idx == nil {
		return nil
	}
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Documents returns all documents in scan order
func (idx *Index) Documents() []Document {
	if idx == nil {
		return nil
	}
	out := make([]Document, 0, len(idx.entries))
	for _, e := range idx.entries {
		out = append(out, idx.docs[e.ID])
	}
	return out
}

// Stats returns the statistics recorded when the index was built
func (idx *Index) Stats() CrawlStats {
	if idx == nil {
		return CrawlStats{}
	}
	return idx.stats
}
