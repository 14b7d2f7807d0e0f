// internal/core/domain/product.go
package domain

// Product is the result of a barcode lookup, used to pre-fill a new item
type Product struct {
	Barcode           string `json:"barcode"`
	Name              string `json:"name"`
	Category          string `json:"category,omitempty"`
	SuggestedCategory string `json:"suggested_category,omitempty"`
	Found             bool   `json:"found"`
	Notice            string `json:"notice,omitempty"`
}

// FallbackProduct builds the product shown when a lookup fails
func FallbackProduct(barcode, notice string) *Product {
	return &Product{
		Barcode: barcode,
		Name:    FallbackProductName(barcode),
		Found:   false,
		Notice:  notice,
	}
}
