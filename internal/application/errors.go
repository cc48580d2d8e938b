package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrAccessDenied  = errors.New("access denied")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid ID")
	ErrNoVault       = errors.New("no vault selected")

	// ErrPermissionDenied is an OS permission failure; it also matches ErrAccessDenied
	ErrPermissionDenied = fmt.Errorf("permission denied: %w", ErrAccessDenied)
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PathError records the path a browse or index request was rejected for
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// DocumentError represents a failed document lookup
type DocumentError struct {
	RawID string
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %q: %v", e.RawID, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
