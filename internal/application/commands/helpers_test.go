package commands

import (
	"os"
	"path/filepath"
	"testing"

	"vaultsearch/internal/adapters/filesystem"
	"vaultsearch/internal/adapters/memory"
	"vaultsearch/internal/adapters/obsidian"
	"vaultsearch/internal/domain"
)

// stubLinks builds predictable links for assertions
type stubLinks struct{}

func (stubLinks) BuildURI(doc domain.Document, vaultRoot string) string {
	return "link:" + vaultRoot + "|" + doc.RelPath
}

type testEnv struct {
	root    string
	guard   *filesystem.Guard
	crawler *filesystem.Crawler
	store   *memory.Store
	links   *obsidian.LinkBuilder
}

// setupEnv creates a browse root with the given files and wires real adapters
func setupEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()

	root, err := filesystem.CanonicalPath(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	return &testEnv{
		root:    root,
		guard:   filesystem.NewGuard(root, false),
		crawler: filesystem.NewCrawler(),
		store:   memory.NewStore(),
		links:   obsidian.NewLinkBuilder(obsidian.LinkConfig{VaultName: "Vault"}),
	}
}

func (e *testEnv) selectVault(t *testing.T, rel string) *SelectVaultResult {
	t.Helper()

	cmd := NewSelectVaultCommand(e.guard, e.crawler, e.store, filepath.Join(e.root, filepath.FromSlash(rel)))
	res, err := cmd.Execute(t.Context())
	if err != nil {
		t.Fatalf("select vault failed: %v", err)
	}
	return res
}
