// internal/handlers/share.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ShareHandler shares lists as text messages and read-only links
type ShareHandler struct {
	share  ports.ShareService
	logger *slog.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(share ports.ShareService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		share:  share,
		logger: logger.With(slog.String("handler", "share")),
	}
}

// TelegramRequest is the body of POST /api/v1/lists/{id}/share/telegram
type TelegramRequest struct {
	ChatID int64 `json:"chat_id"`
}

// Share handles GET /api/v1/lists/{id}/share
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	msg, err := h.share.Compose(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to prepare share message")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, msg)
}

// SendTelegram handles POST /api/v1/lists/{id}/share/telegram
func (h *ShareHandler) SendTelegram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	var req TelegramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.share.SendTelegram(ctx, listID, req.ChatID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to queue telegram share")
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, job)
}

// Shared handles GET /api/v1/shared/{token}
func (h *ShareHandler) Shared(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shared, err := h.share.ResolveToken(ctx, r.PathValue("token"))
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load shared list")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, h.logger, http.StatusOK, shared)
}
