package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/security"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps workflow errors onto HTTP statuses. Anything outside the
// domain taxonomy is reported as an opaque internal error.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotAuthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSelfRequest),
		errors.Is(err, domain.ErrDuplicatePending),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error while handling request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
