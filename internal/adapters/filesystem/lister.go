package filesystem

import (
	"os"
	"path/filepath"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

// Lister implements ports.DirectoryLister
type Lister struct {
	guard ports.PathGuard
}

// Ensure Lister implements DirectoryLister
var _ ports.DirectoryLister = (*Lister)(nil)

// NewLister creates a lister that only offers directories the guard allows
func NewLister(guard ports.PathGuard) *Lister {
	return &Lister{guard: guard}
}

// List returns the subdirectories and files of path, directories first
func (l *Lister) List(path string) (*domain.Listing, error) {
	path = filepath.Clean(path)

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	base := l.breadcrumbBase(path)
	listing := &domain.Listing{
		Path:       path,
		Breadcrumb: domain.Breadcrumbs(base, path),
		Dirs:       []domain.DirEntry{},
		Files:      []domain.DirEntry{},
	}
	if path != base {
		listing.Parent = filepath.Dir(path)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		// Follow symlinks so linked folders can be browsed
		info, err := os.Stat(entryPath)
		if err != nil {
			continue
		}

		if info.IsDir() {
			if !l.guard.Allowed(entryPath) {
				continue
			}
			listing.Dirs = append(listing.Dirs, domain.DirEntry{Name: entry.Name(), Path: entryPath})
			continue
		}
		listing.Files = append(listing.Files, domain.DirEntry{Name: entry.Name(), Path: entryPath})
	}

	domain.SortEntries(listing.Dirs)
	domain.SortEntries(listing.Files)
	return listing, nil
}

func (l *Lister) breadcrumbBase(path string) string {
	if l.guard.AllowAny() {
		return filesystemRoot(path)
	}
	return l.guard.Root()
}

// filesystemRoot returns the root of the volume holding path (e.g. "/" or `C:\`)
func filesystemRoot(path string) string {
	return filepath.VolumeName(path) + string(filepath.Separator)
}
