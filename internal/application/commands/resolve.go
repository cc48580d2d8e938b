package commands

import (
	"errors"
	"io/fs"
	"os"

	"vaultsearch/internal/application"
	"vaultsearch/internal/ports"
)

// resolveDirectory checks path against the guard and returns its canonical form.
// Guard rejections are access denied; missing paths and files are not-a-directory.
func resolveDirectory(guard ports.PathGuard, path string) (string, error) {
	if !guard.Allowed(path) {
		return "", &application.PathError{Path: path, Err: application.ErrAccessDenied}
	}

	resolved, err := guard.Resolve(path)
	if err != nil {
		return "", &application.PathError{Path: path, Err: application.ErrNotADirectory}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", &application.PathError{Path: resolved, Err: application.ErrPermissionDenied}
		}
		return "", &application.PathError{Path: resolved, Err: application.ErrNotADirectory}
	}
	if !info.IsDir() {
		return "", &application.PathError{Path: resolved, Err: application.ErrNotADirectory}
	}

	return resolved, nil
}

// classifyFSError maps permission failures to permission denied and keeps the rest
func classifyFSError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &application.PathError{Path: path, Err: application.ErrPermissionDenied}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &application.PathError{Path: path, Err: application.ErrNotADirectory}
	}
	return err
}
