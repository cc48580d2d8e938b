package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCrawl_IndexesOnlyMarkdown(t *testing.T) {
	vault := setupTestVault(t, map[string]string{
		"Idea.md":               "hello world",
		"UPPER.MD":              "shouting",
		"Mixed.Md":              "mixed case",
		"sub/deeper/Nested.md":  "nested note",
		"sub/image.png":         "not a note",
		"notes.txt":             "plain text",
		"README.markdown":       "other extension",
		".obsidian/config.json": "{}",
	})

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	if idx.Len() != 4 {
		t.Fatalf("expected 4 documents, got %d", idx.Len())
	}

	entries := idx.Entries()
	if len(entries) != idx.Len() {
		t.Fatalf("entries length %d differs from document count %d", len(entries), idx.Len())
	}

	seen := make(map[int]bool)
	for i, e := range entries {
		if e.ID != i {
			t.Errorf("expected id %d at position %d, got %d", i, i, e.ID)
		}
		if seen[e.ID] {
			t.Errorf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
		if _, ok := idx.Get(e.ID); !ok {
			t.Errorf("id %d missing from mapping", e.ID)
		}
	}

	stats := idx.Stats()
	if stats.FilesScanned != 8 {
		t.Errorf("expected 8 files scanned, got %d", stats.FilesScanned)
	}
	if stats.NotesIndexed != 4 {
		t.Errorf("expected 4 notes indexed, got %d", stats.NotesIndexed)
	}
}

func TestCrawl_DocumentFields(t *testing.T) {
	vault := setupTestVault(t, map[string]string{
		"Sub/Note.md": "body text",
	})

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	doc, ok := idx.Get(0)
	if !ok {
		t.Fatal("expected document 0")
	}
	if doc.Title != "Note" {
		t.Errorf("expected title Note, got %q", doc.Title)
	}
	if doc.Content != "body text" {
		t.Errorf("expected content %q, got %q", "body text", doc.Content)
	}
	if doc.RelPath != filepath.Join("Sub", "Note.md") {
		t.Errorf("unexpected relative path %q", doc.RelPath)
	}
	if doc.AbsPath != filepath.Join(vault, "Sub", "Note.md") {
		t.Errorf("unexpected absolute path %q", doc.AbsPath)
	}
	if idx.VaultRoot() != vault {
		t.Errorf("expected vault root %q, got %q", vault, idx.VaultRoot())
	}
}

func TestCrawl_RelativePathIsSuffixOfAbsolutePath(t *testing.T) {
	vault := setupTestVault(t, map[string]string{
		"a.md":           "a",
		"x/b.md":         "b",
		"x/y/z/c.md":     "c",
		"space dir/d.md": "d",
	})

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	for _, doc := range idx.Documents() {
		if filepath.Join(vault, doc.RelPath) != doc.AbsPath {
			t.Errorf("relative path %q does not lead from %q to %q", doc.RelPath, vault, doc.AbsPath)
		}
		if !strings.HasSuffix(doc.AbsPath, doc.RelPath) {
			t.Errorf("relative path %q is not a suffix of %q", doc.RelPath, doc.AbsPath)
		}
	}
}

func TestCrawl_InvalidUTF8IsDropped(t *testing.T) {
	vault := setupTestVault(t, nil)
	if err := os.WriteFile(filepath.Join(vault, "bin.md"), []byte("ok\xff\xfeend"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	doc, _ := idx.Get(0)
	if doc.Content != "okend" {
		t.Errorf("expected invalid bytes dropped, got %q", doc.Content)
	}
}

func TestCrawl_UnreadableFileHasEmptyContent(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	vault := setupTestVault(t, map[string]string{
		"good.md":   "readable",
		"locked.md": "secret",
	})
	locked := filepath.Join(vault, "locked.md")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0644) })

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("expected both files indexed, got %d", idx.Len())
	}
	for _, doc := range idx.Documents() {
		switch doc.Title {
		case "locked":
			if doc.Content != "" {
				t.Errorf("expected empty content for unreadable file, got %q", doc.Content)
			}
		case "good":
			if doc.Content != "readable" {
				t.Errorf("expected readable content, got %q", doc.Content)
			}
		}
	}
	if idx.Stats().ReadFailures != 1 {
		t.Errorf("expected 1 read failure, got %d", idx.Stats().ReadFailures)
	}
}

func TestCrawl_MissingRoot(t *testing.T) {
	_, err := NewCrawler().Crawl(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestCrawl_RootIsFile(t *testing.T) {
	vault := setupTestVault(t, map[string]string{"a.md": "a"})

	_, err := NewCrawler().Crawl(filepath.Join(vault, "a.md"))
	if err == nil {
		t.Fatal("expected error when root is a file")
	}
}

func TestCrawl_SymlinkedRoot(t *testing.T) {
	vault := setupTestVault(t, map[string]string{"Idea.md": "hello world"})
	link := filepath.Join(t.TempDir(), "vault-link")
	if err := os.Symlink(vault, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	idx, err := NewCrawler().Crawl(link)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 document through the symlinked root, got %d", idx.Len())
	}
	if idx.VaultRoot() != vault {
		t.Errorf("expected vault root %q, got %q", vault, idx.VaultRoot())
	}

	doc, _ := idx.Get(0)
	if doc.RelPath != "Idea.md" || doc.AbsPath != filepath.Join(vault, "Idea.md") {
		t.Errorf("unexpected document paths: rel=%q abs=%q", doc.RelPath, doc.AbsPath)
	}
}

func TestCrawl_EmptyVault(t *testing.T) {
	vault := setupTestVault(t, nil)

	idx, err := NewCrawler().Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("expected empty index, got %d documents", idx.Len())
	}
}

func TestCrawl_Exclude(t *testing.T) {
	vault := setupTestVault(t, map[string]string{
		"keep.md":             "k",
		".obsidian/plugin.md": "p",
		"templates/daily.md":  "t",
		"archive/old.md":      "o",
	})

	idx, err := NewCrawler(WithExclude(".obsidian/**", "templates", "  ")).Crawl(vault)
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	titles := make(map[string]bool)
	for _, doc := range idx.Documents() {
		titles[doc.Title] = true
	}
	if !titles["keep"] || !titles["old"] {
		t.Errorf("expected keep and old to be indexed, got %v", titles)
	}
	if titles["plugin"] || titles["daily"] {
		t.Errorf("expected excluded notes to be skipped, got %v", titles)
	}
}

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"note.md", true},
		{"NOTE.MD", true},
		{"note.mD", true},
		{"note.markdown", false},
		{"note.md.bak", false},
		{"md", false},
	}

	for _, tt := range tests {
		if got := IsMarkdown(tt.name); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNoteTitle(t *testing.T) {
	tests := map[string]string{
		"Idea.md":      "Idea",
		"my.daily.md":  "my.daily",
		"UPPER.MD":     "UPPER",
		"no extension": "no extension",
		".md":          ".md",
	}

	for name, want := range tests {
		if got := NoteTitle(name); got != want {
			t.Errorf("NoteTitle(%q) = %q, want %q", name, got, want)
		}
	}
}
