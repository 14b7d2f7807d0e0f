// internal/core/ports/product_lookup.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ProductLookup queries an external product database by barcode.
// A missing product is reported as domain.ErrProductNotFound.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*domain.Product, error)
}

// ProductService resolves barcodes into products, always returning a usable
// product. On failure the product carries a fallback name and the error is a
// *domain.LookupError.
type ProductService interface {
	Resolve(ctx context.Context, barcode string) (*domain.Product, error)
}
