// internal/handlers/respond.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

const maxJSONBody = 1 << 20

// errorResponse is the body of every non-2xx JSON response
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, errorResponse{Error: message})
}

// respondServiceError maps service errors onto status codes. Store failures
// are logged and answered with the generic message so internals never leak.
func respondServiceError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error, generic string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, "Not found")
	default:
		logger.ErrorContext(ctx, generic, slog.String("error", err.Error()))
		respondError(w, logger, http.StatusInternalServerError, generic)
	}
}

// decodeJSON reads a bounded JSON body into dest
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(dest)
}

// pathID parses a positive integer path value
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
