package httpapi

import (
	"errors"
	"net/http"

	"vaultsearch/internal/application"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps application errors to an HTTP status and a client message
func statusFor(err error) (int, string) {
	var validationErr *application.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, application.ErrPermissionDenied):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, application.ErrAccessDenied):
		return http.StatusForbidden, "path outside of allowed root"
	case errors.Is(err, application.ErrNotADirectory):
		return http.StatusBadRequest, "not a directory"
	case errors.Is(err, application.ErrInvalidID):
		return http.StatusBadRequest, "invalid doc id"
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound, "document not found"
	case errors.Is(err, application.ErrNoVault):
		return http.StatusNotFound, "no vault selected"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
