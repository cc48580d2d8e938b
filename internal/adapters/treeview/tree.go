// Package treeview renders indexed notes as a directory tree
package treeview

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"

	"vaultsearch/internal/domain"
)

// NoteTree accumulates note paths under a single root label
type NoteTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

// New creates an empty tree labelled rootLabel
func New(rootLabel string) *NoteTree {
	return &NoteTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

// FromIndex builds the tree of every document in idx, in index order
func FromIndex(idx *domain.Index) *NoteTree {
	t := New(idx.VaultRoot())
	for _, doc := range idx.Documents() {
		t.Insert(doc.RelPath, doc.Title)
	}
	return t
}

func (t *NoteTree) dir(dirPath string) gotree.Tree {
	if dirPath == "." || dirPath == "" {
		return t.tree
	}
	if d, ok := t.dirs[dirPath]; ok {
		return d
	}
	d := t.dir(filepath.Dir(dirPath)).Add(filepath.Base(dirPath) + "/")
	t.dirs[dirPath] = d
	return d
}

// Insert adds a note at relPath, shown by its title
func (t *NoteTree) Insert(relPath, title string) {
	t.dir(filepath.Dir(relPath)).Add(title)
}

// Render returns the tree as text
func (t *NoteTree) Render() string {
	return t.tree.Print()
}
