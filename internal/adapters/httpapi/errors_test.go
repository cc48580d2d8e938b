package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"vaultsearch/internal/application"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", &application.ValidationError{Field: "path", Message: "path is required"}, http.StatusBadRequest, "path is required"},
		{"outside root", &application.PathError{Path: "/etc", Err: application.ErrAccessDenied}, http.StatusForbidden, "path outside of allowed root"},
		{"os permission", &application.PathError{Path: "/root/locked", Err: application.ErrPermissionDenied}, http.StatusForbidden, "permission denied"},
		{"not a directory", &application.PathError{Path: "/a.md", Err: application.ErrNotADirectory}, http.StatusBadRequest, "not a directory"},
		{"invalid id", &application.DocumentError{RawID: "x", Err: application.ErrInvalidID}, http.StatusBadRequest, "invalid doc id"},
		{"unknown id", &application.DocumentError{RawID: "9", Err: application.ErrNotFound}, http.StatusNotFound, "document not found"},
		{"no vault", fmt.Errorf("info: %w", application.ErrNoVault), http.StatusNotFound, "no vault selected"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFor(tt.err)
			if status != tt.wantStatus || msg != tt.wantMsg {
				t.Errorf("statusFor() = %d %q, want %d %q", status, msg, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}
