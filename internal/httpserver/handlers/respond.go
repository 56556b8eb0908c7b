package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondErr maps the error taxonomy onto HTTP statuses. Authorization
// failures and true absence share 404 so permission boundaries are not
// probeable; only credential failures get 401.
func respondErr(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrExists),
		errors.Is(err, domain.ErrNoOp):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Error("internal error", logger.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
