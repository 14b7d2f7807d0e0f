// internal/core/domain/item.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the fixed category set offered when adding a product.
var Categories = []string{
	"Warzywa i owoce",
	"Nabiał",
	"Mięso i wędliny",
	"Pieczywo",
	"Słodycze",
	"Napoje",
	"Przekąski",
	"Inne",
}

const (
	// UncategorizedLabel groups items without a category in shared lists.
	UncategorizedLabel = "Bez kategorii"

	unitKilograms = "kg"
	unitPieces    = "szt."

	// weights are stored as NUMERIC(10, 3)
	weightScale = 3
)

var maxWeight = decimal.New(1, 10-weightScale)

// ShoppingItem is a purchasable entry belonging to exactly one list.
// Quantity is authoritative unless Weight is set, in which case Quantity is 1.
type ShoppingItem struct {
	ID          int64            `json:"id"`
	ListID      int64            `json:"list_id"`
	Name        string           `json:"name"`
	IsCompleted bool             `json:"is_completed"`
	Barcode     string           `json:"barcode,omitempty"`
	Quantity    int              `json:"quantity"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Category    string           `json:"category,omitempty"`
	Icon        string           `json:"icon,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Validate validates the shopping item
func (i *ShoppingItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return validationError("name is required")
	}
	if i.ListID <= 0 {
		return validationError("list_id is required")
	}
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	if i.Weight != nil {
		w := *i.Weight
		switch {
		case !w.IsPositive():
			return validationError("weight must be positive")
		case !w.Equal(w.Truncate(weightScale)):
			return validationError("weight must have at most %d decimal places", weightScale)
		case w.GreaterThanOrEqual(maxWeight):
			return validationError("weight must be less than %s", maxWeight)
		}
	}
	if b := strings.TrimSpace(i.Barcode); b != "" && !IsNumericCode(b) {
		return validationError("barcode must be numeric")
	}
	return nil
}

// PrepareForStorage normalizes fields before persisting
func (i *ShoppingItem) PrepareForStorage() {
	i.Name = strings.TrimSpace(i.Name)
	i.Barcode = strings.TrimSpace(i.Barcode)
	i.Category = strings.TrimSpace(i.Category)
	i.Icon = strings.TrimSpace(i.Icon)

	if i.Weight != nil {
		i.Quantity = 1
	}
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
}

// IsWeighed reports whether the item is measured in kilograms
func (i *ShoppingItem) IsWeighed() bool {
	return i.Weight != nil
}

// MeasureLabel renders the unit of measure, e.g. "1.5 kg" or "3 szt."
func (i *ShoppingItem) MeasureLabel() string {
	if i.Weight != nil {
		return i.Weight.String() + " " + unitKilograms
	}
	return decimal.NewFromInt(int64(i.Quantity)).String() + " " + unitPieces
}

// DisplayCategory returns the category or the uncategorized label
func (i *ShoppingItem) DisplayCategory() string {
	if i.Category == "" {
		return UncategorizedLabel
	}
	return i.Category
}

// IsNumericCode reports whether s is a non-empty string of ASCII digits
func IsNumericCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
