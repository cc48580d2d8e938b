package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vaultsearch/internal/ports"
)

// Guard implements ports.PathGuard for a single browse root
type Guard struct {
	root     string
	allowAny bool
}

// Ensure Guard implements PathGuard
var _ ports.PathGuard = (*Guard)(nil)

// NewGuard creates a guard rooted at root. With allowAny set every path is allowed.
func NewGuard(root string, allowAny bool) *Guard {
	canonical, err := CanonicalPath(root)
	if err != nil {
		canonical = filepath.Clean(ExpandHome(root))
	}
	return &Guard{root: canonical, allowAny: allowAny}
}

// Allowed reports whether path is the root or nested under it.
// Paths that cannot be resolved are denied.
func (g *Guard) Allowed(path string) bool {
	if g.allowAny {
		return true
	}
	canonical, err := CanonicalPath(path)
	if err != nil {
		return false
	}
	return IsWithin(g.root, canonical)
}

// Resolve returns the canonical form of path
func (g *Guard) Resolve(path string) (string, error) {
	return CanonicalPath(path)
}

// Root returns the canonical browse root
func (g *Guard) Root() string {
	return g.root
}

// AllowAny reports whether the sandbox is disabled
func (g *Guard) AllowAny() bool {
	return g.allowAny
}

// IsWithin reports whether child equals parent or lies below it.
// Both paths must be absolute and clean.
func IsWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// CanonicalPath returns the absolute form of path with symlinks resolved.
// Trailing components that do not exist yet are kept as given.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", err
	}
	return resolveExisting(abs)
}

func resolveExisting(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(path)
	if parent == path {
		return path, nil
	}
	base, err := resolveExisting(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, filepath.Base(path)), nil
}
