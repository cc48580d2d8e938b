package domain

import "time"

// Document is one markdown note captured by a crawl
type Document struct {
	ID      int    // Crawl-local id, assigned in discovery order
	Title   string // File base name without extension
	Content string // Raw text, invalid bytes dropped
	AbsPath string // Resolved filesystem path at crawl time
	RelPath string // Path relative to the vault root
}

// Entry is one (id, text) pair of the index scan order
type Entry struct {
	ID   int
	Text string
}

// SearchResult represents a search match
type SearchResult struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	RelPath string `json:"rel_path"`
	AbsPath string `json:"abs_path"`
	URI     string `json:"obsidian_url"`
}

// CrawlStats holds statistics from a crawl
type CrawlStats struct {
	FilesScanned int
	NotesIndexed int
	ReadFailures int
	Duration     time.Duration
}
