package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestVault creates a vault in a temp dir and returns its canonical path
func setupTestVault(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := CanonicalPath(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	return dir
}
