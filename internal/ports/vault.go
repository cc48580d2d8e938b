package ports

import "vaultsearch/internal/domain"

// PathGuard decides whether a path may be browsed or indexed
type PathGuard interface {
	// Allowed reports whether path is inside the browse root (or any path is allowed)
	Allowed(path string) bool

	// Resolve returns the canonical (absolute, symlink-free) form of path
	Resolve(path string) (string, error)

	// Root returns the canonical browse root
	Root() string

	// AllowAny reports whether the sandbox is disabled
	AllowAny() bool
}

// DirectoryLister lists one directory for the vault picker.
// Errors are returned as-is from the filesystem.
type DirectoryLister interface {
	List(path string) (*domain.Listing, error)
}
