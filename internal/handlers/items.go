// internal/handlers/items.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ItemHandler handles requests for the items of a list
type ItemHandler struct {
	shopping ports.ShoppingService
	logger   *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(shopping ports.ShoppingService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		shopping: shopping,
		logger:   logger.With(slog.String("handler", "items")),
	}
}

// ItemRequest is the body of item create and update requests. A weight
// makes the item weighed; the quantity is then ignored.
type ItemRequest struct {
	Name     string           `json:"name"`
	Quantity int              `json:"quantity"`
	Weight   *decimal.Decimal `json:"weight,omitempty"`
	Category string           `json:"category,omitempty"`
	Barcode  string           `json:"barcode,omitempty"`
	Icon     string           `json:"icon,omitempty"`
}

// ToDomain converts the request to a domain item
func (r *ItemRequest) ToDomain() *domain.ShoppingItem {
	return &domain.ShoppingItem{
		Name:     r.Name,
		Quantity: r.Quantity,
		Weight:   r.Weight,
		Category: r.Category,
		Barcode:  r.Barcode,
		Icon:     r.Icon,
	}
}

// CompletedRequest is the body of PATCH .../completed
type CompletedRequest struct {
	Completed *bool `json:"completed"`
}

// ListItems handles GET /api/v1/lists/{id}/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	items, err := h.shopping.GetItems(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load items")
		return
	}
	if items == nil {
		items = []*domain.ShoppingItem{}
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"list_id": listID,
		"items":   items,
		"count":   len(items),
	})
}

// CreateItem handles POST /api/v1/lists/{id}/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.shopping.AddItem(ctx, listID, req.ToDomain())
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to create item")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// GetItem handles GET /api/v1/lists/{id}/items/{itemId}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	item, err := h.shopping.GetItem(ctx, listID, itemID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/lists/{id}/items/{itemId}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := req.ToDomain()
	item.ID = itemID

	updated, err := h.shopping.UpdateItem(ctx, listID, item)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to update item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, updated)
}

// SetCompleted handles PATCH /api/v1/lists/{id}/items/{itemId}/completed
func (h *ItemHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	var req CompletedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Completed == nil {
		respondError(w, h.logger, http.StatusBadRequest, "completed is required")
		return
	}

	if err := h.shopping.SetItemCompleted(ctx, listID, itemID, *req.Completed); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to update item")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"id":           itemID,
		"list_id":      listID,
		"is_completed": *req.Completed,
	})
}

// DeleteItem handles DELETE /api/v1/lists/{id}/items/{itemId}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, itemID, ok := h.itemPath(w, r)
	if !ok {
		return
	}

	if err := h.shopping.DeleteItem(ctx, listID, itemID); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCompleted handles DELETE /api/v1/lists/{id}/items/completed
func (h *ItemHandler) DeleteCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	deleted, err := h.shopping.DeleteCompleted(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to delete completed items")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"list_id": listID,
		"deleted": deleted,
	})
}

func (h *ItemHandler) itemPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return 0, 0, false
	}
	itemID, ok := pathID(r, "itemId")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid item ID")
		return 0, 0, false
	}
	return listID, itemID, true
}
