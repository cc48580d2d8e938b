package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

const markdownExt = ".md"

// Crawler implements ports.VaultCrawler by walking the filesystem
type Crawler struct {
	exclude []string
}

// Ensure Crawler implements VaultCrawler
var _ ports.VaultCrawler = (*Crawler)(nil)

// CrawlerOption configures a Crawler
type CrawlerOption func(*Crawler)

// WithExclude skips files and directories whose vault-relative, slash-separated
// path matches one of the doublestar patterns (e.g. ".obsidian/**").
func WithExclude(patterns ...string) CrawlerOption {
	return func(c *Crawler) {
		for _, p := range patterns {
			if p = strings.TrimSpace(p); p != "" {
				c.exclude = append(c.exclude, p)
			}
		}
	}
}

// NewCrawler creates a new filesystem crawler
func NewCrawler(opts ...CrawlerOption) *Crawler {
	c := &Crawler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NoteRead is the outcome of reading one note.
// A failed read keeps Content empty and records the cause in Err.
type NoteRead struct {
	Content string
	Err     error
}

// ReadNote reads a note as text, dropping byte sequences that are not valid UTF-8
func ReadNote(path string) NoteRead {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoteRead{Err: err}
	}
	return NoteRead{Content: strings.ToValidUTF8(string(data), "")}
}

// Crawl indexes every markdown file below root.
// Only an unreadable root is an error; unreadable notes are indexed with empty content.
func (c *Crawler) Crawl(root string) (*domain.Index, error) {
	start := time.Now()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid vault path: %w", err)
	}
	// WalkDir does not descend into a symlinked root
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to read vault: %s is not a directory", absRoot)
	}

	var docs []domain.Document
	stats := domain.CrawlStats{}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			return nil // Skip unreadable entries
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}

		if d.IsDir() {
			if path != absRoot && c.excluded(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinked directories are listed but not descended into
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		stats.FilesScanned++
		if !IsMarkdown(d.Name()) || c.excluded(relPath) {
			return nil
		}

		note := ReadNote(path)
		if note.Err != nil {
			stats.ReadFailures++
		}

		docs = append(docs, domain.Document{
			ID:      len(docs),
			Title:   NoteTitle(d.Name()),
			Content: note.Content,
			AbsPath: resolvedPath(path),
			RelPath: relPath,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	stats.Duration = time.Since(start)
	return domain.NewIndex(absRoot, docs, stats), nil
}

func (c *Crawler) excluded(relPath string) bool {
	slashed := filepath.ToSlash(relPath)
	for _, pattern := range c.exclude {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

// IsMarkdown reports whether name has a .md extension, ignoring case
func IsMarkdown(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), markdownExt)
}

// NoteTitle returns the file name without its extension.
// A name that is only an extension (".md") is kept whole.
func NoteTitle(name string) string {
	if title := strings.TrimSuffix(name, filepath.Ext(name)); title != "" {
		return title
	}
	return name
}

func resolvedPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}
