//go:build !windows

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGuard_Allowed(t *testing.T) {
	parent := setupTestVault(t, map[string]string{
		"root/notes/a.md":  "a",
		"rootX/secret.md":  "s",
		"outside/other.md": "o",
	})
	root := filepath.Join(parent, "root")

	guard := NewGuard(root, false)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "root itself", path: root, want: true},
		{name: "root with trailing slash", path: root + "/", want: true},
		{name: "nested directory", path: filepath.Join(root, "notes"), want: true},
		{name: "nested file", path: filepath.Join(root, "notes", "a.md"), want: true},
		{name: "nonexistent below root", path: filepath.Join(root, "missing", "deeper"), want: true},
		{name: "parent of root", path: parent, want: false},
		{name: "sibling sharing prefix", path: filepath.Join(parent, "rootX"), want: false},
		{name: "sibling directory", path: filepath.Join(parent, "outside"), want: false},
		{name: "dot-dot escape", path: filepath.Join(root, "notes") + "/../../outside", want: false},
		{name: "filesystem root", path: "/", want: false},
		{name: "through a file", path: filepath.Join(root, "notes", "a.md", "x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.Allowed(tt.path); got != tt.want {
				t.Errorf("Allowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestGuard_SymlinkEscape(t *testing.T) {
	parent := setupTestVault(t, map[string]string{
		"root/a.md":       "a",
		"outside/other.md": "o",
	})
	root := filepath.Join(parent, "root")
	link := filepath.Join(root, "escape")
	if err := os.Symlink(filepath.Join(parent, "outside"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	guard := NewGuard(root, false)

	if guard.Allowed(link) {
		t.Error("expected symlink pointing outside the root to be denied")
	}
}

func TestGuard_AllowAny(t *testing.T) {
	guard := NewGuard(t.TempDir(), true)

	for _, path := range []string{"/", "/etc", "/definitely/not/there", "relative/path"} {
		if !guard.Allowed(path) {
			t.Errorf("expected %q to be allowed in allow-any mode", path)
		}
	}
	if !guard.AllowAny() {
		t.Error("expected AllowAny to report true")
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		parent string
		child  string
		want   bool
	}{
		{"/vault", "/vault", true},
		{"/vault", "/vault/a", true},
		{"/vault", "/vaultage", false},
		{"/vault", "/", false},
		{"/", "/anything", true},
		{"/vault", "/vault/..hidden", true},
	}

	for _, tt := range tests {
		if got := IsWithin(tt.parent, tt.child); got != tt.want {
			t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/notes"); got != filepath.Join(home, "notes") {
		t.Errorf("ExpandHome(~/notes) = %q", got)
	}
	if got := ExpandHome("~"); got != home {
		t.Errorf("ExpandHome(~) = %q", got)
	}
	if got := ExpandHome("/abs/~x"); got != "/abs/~x" {
		t.Errorf("expected absolute path unchanged, got %q", got)
	}
	if got := ExpandHome("~other/x"); got != "~other/x" {
		t.Errorf("expected ~user form unchanged, got %q", got)
	}
}
