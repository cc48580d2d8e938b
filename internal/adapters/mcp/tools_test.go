package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsearch/internal/adapters/filesystem"
	"vaultsearch/internal/adapters/memory"
	"vaultsearch/internal/adapters/obsidian"
)

func setupDeps(t *testing.T, files map[string]string) (Deps, string) {
	t.Helper()

	root, err := filesystem.CanonicalPath(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	guard := filesystem.NewGuard(root, false)
	return Deps{
		Guard:   guard,
		Lister:  filesystem.NewLister(guard),
		Crawler: filesystem.NewCrawler(),
		Store:   memory.NewStore(),
		Links:   obsidian.NewLinkBuilder(obsidian.LinkConfig{}),
	}, root
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("expected content in tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestSelectVaultThenSearch(t *testing.T) {
	deps, root := setupDeps(t, map[string]string{
		"vault/Idea.md":    "hello world",
		"vault/Sub/Two.md": "second note",
	})

	out, isErr := call(t, selectVaultHandler(deps), map[string]any{"path": filepath.Join(root, "vault")})
	if isErr {
		t.Fatalf("select_vault failed: %s", out)
	}
	if !strings.Contains(out, "Indexed 2 notes") {
		t.Errorf("unexpected output %q", out)
	}

	out, isErr = call(t, searchHandler(deps), map[string]any{"query": "HELLO"})
	if isErr {
		t.Fatalf("search failed: %s", out)
	}
	if !strings.Contains(out, "Idea") || !strings.Contains(out, "obsidian://open?path=") {
		t.Errorf("unexpected search output %q", out)
	}
	if strings.Contains(out, "Two") {
		t.Errorf("expected only the matching note, got %q", out)
	}

	out, _ = call(t, searchHandler(deps), map[string]any{"query": "missing"})
	if out != "No results found." {
		t.Errorf("expected no results, got %q", out)
	}
}

func TestSearch_RequiresQuery(t *testing.T) {
	deps, _ := setupDeps(t, nil)

	if _, isErr := call(t, searchHandler(deps), map[string]any{"query": "  "}); !isErr {
		t.Error("expected blank query to be a tool error")
	}
}

func TestSelectVault_Denied(t *testing.T) {
	deps, _ := setupDeps(t, nil)

	out, isErr := call(t, selectVaultHandler(deps), map[string]any{"path": t.TempDir()})
	if !isErr || !strings.Contains(out, "access denied") {
		t.Errorf("expected access denied tool error, got %q", out)
	}
}

func TestReadNote(t *testing.T) {
	deps, root := setupDeps(t, map[string]string{"vault/Idea.md": "hello world"})
	call(t, selectVaultHandler(deps), map[string]any{"path": filepath.Join(root, "vault")})

	tests := []struct {
		name    string
		id      any
		want    string
		wantErr bool
	}{
		{name: "string id", id: "0", want: "hello world"},
		{name: "number id", id: float64(0), want: "# Idea"},
		{name: "unknown", id: "5", want: "not found", wantErr: true},
		{name: "invalid", id: "x", want: "invalid ID", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := call(t, readNoteHandler(deps), map[string]any{"id": tt.id})
			if isErr != tt.wantErr {
				t.Fatalf("expected error=%v, got %v (%q)", tt.wantErr, isErr, out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in %q", tt.want, out)
			}
		})
	}
}

func TestListDirectory(t *testing.T) {
	deps, root := setupDeps(t, map[string]string{
		"vault/Idea.md": "x",
		"notes.txt":     "y",
	})

	out, isErr := call(t, listDirectoryHandler(deps), map[string]any{})
	if isErr {
		t.Fatalf("list_directory failed: %s", out)
	}
	if !strings.HasPrefix(out, root+"\n") || !strings.Contains(out, "  vault/\n") || !strings.Contains(out, "  notes.txt\n") {
		t.Errorf("unexpected listing %q", out)
	}

	if _, isErr := call(t, listDirectoryHandler(deps), map[string]any{"path": "/"}); !isErr {
		t.Error("expected listing outside the browse root to fail")
	}
}

func TestVaultInfoAndTree(t *testing.T) {
	deps, root := setupDeps(t, map[string]string{"vault/Sub/Idea.md": "x"})

	if _, isErr := call(t, vaultInfoHandler(deps), nil); !isErr {
		t.Error("expected vault_info to fail before selection")
	}
	if _, isErr := call(t, treeHandler(deps), nil); !isErr {
		t.Error("expected tree to fail before selection")
	}

	call(t, selectVaultHandler(deps), map[string]any{"path": filepath.Join(root, "vault")})

	out, isErr := call(t, vaultInfoHandler(deps), nil)
	if isErr || !strings.Contains(out, "notes: 1") {
		t.Errorf("unexpected vault_info output %q", out)
	}

	out, isErr = call(t, treeHandler(deps), nil)
	if isErr || !strings.Contains(out, "Sub/") || !strings.Contains(out, "Idea") {
		t.Errorf("unexpected tree output %q", out)
	}
}
