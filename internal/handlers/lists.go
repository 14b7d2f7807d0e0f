// internal/handlers/lists.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ListHandler handles shopping list requests
type ListHandler struct {
	shopping ports.ShoppingService
	logger   *slog.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(shopping ports.ShoppingService, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		shopping: shopping,
		logger:   logger.With(slog.String("handler", "lists")),
	}
}

// CreateListRequest is the body of POST /api/v1/lists
type CreateListRequest struct {
	Name string `json:"name"`
}

// CreateList handles POST /api/v1/lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	list, err := h.shopping.CreateList(ctx, req.Name)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to create list")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, list)
}

// GetLists handles GET /api/v1/lists
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lists, err := h.shopping.GetLists(ctx)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load lists")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"lists": lists,
		"count": len(lists),
	})
}

// GetList handles GET /api/v1/lists/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	list, err := h.shopping.GetList(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load list")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, list)
}

// DeleteList handles DELETE /api/v1/lists/{id}. Items go with the list.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	if err := h.shopping.DeleteList(ctx, listID); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to delete list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/v1/lists/{id}/summary
func (h *ListHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	summary, err := h.shopping.Summary(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load summary")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, summary)
}
