package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// DirEntry is a file or directory shown by the browser
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Crumb is one clickable segment of a breadcrumb trail
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Listing is the content of one browsed directory
type Listing struct {
	Path       string     `json:"path"`
	Parent     string     `json:"parent,omitempty"`
	Breadcrumb []Crumb    `json:"breadcrumb"`
	Dirs       []DirEntry `json:"dirs"`
	Files      []DirEntry `json:"files"`
}

// Breadcrumbs returns the trail from base down to path.
// When path is not below base only the base crumb is returned.
func Breadcrumbs(base, path string) []Crumb {
	base = filepath.Clean(base)
	crumbs := []Crumb{{Label: base, Path: base}}

	rel, err := filepath.Rel(base, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return crumbs
	}

	current := base
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, part)
		crumbs = append(crumbs, Crumb{Label: part, Path: current})
	}
	return crumbs
}

// SortEntries sorts entries case-insensitively by name
func SortEntries(entries []DirEntry) {
	slices.SortFunc(entries, func(a, b DirEntry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
