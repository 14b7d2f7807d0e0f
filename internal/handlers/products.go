// internal/handlers/products.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ProductHandler resolves barcodes into products
type ProductHandler struct {
	products ports.ProductService
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products ports.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger.With(slog.String("handler", "products")),
	}
}

// Lookup handles GET /api/v1/products/{barcode}. A failed lookup still
// answers 200 with the fallback product so the client can pre-fill the form.
func (h *ProductHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	barcode := r.PathValue("barcode")

	product, err := h.products.Resolve(ctx, barcode)
	if err != nil {
		var lookupErr *domain.LookupError
		if errors.As(err, &lookupErr) && product != nil {
			h.logger.InfoContext(ctx, "serving fallback product",
				slog.String("barcode", barcode),
				slog.String("error", err.Error()))
			respondJSON(w, h.logger, http.StatusOK, product)
			return
		}
		respondServiceError(ctx, w, h.logger, err, "Failed to look up product")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}
