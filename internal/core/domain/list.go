// internal/core/domain/list.go
package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxListNameLength = 200

// ShoppingList is a named, user-created container of items
type ShoppingList struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ItemCount int       `json:"item_count"`
}

// NewShoppingList creates a list with a trimmed name
func NewShoppingList(name string) *ShoppingList {
	return &ShoppingList{
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}
}

// Validate checks the list before it is stored
func (l *ShoppingList) Validate() error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return validationError("name is required")
	}
	if utf8.RuneCountInString(l.Name) > maxListNameLength {
		return validationError("name must be at most %d characters", maxListNameLength)
	}
	return nil
}

// ListSummary aggregates the items of one list
type ListSummary struct {
	ListID      int64          `json:"list_id"`
	Name        string         `json:"name"`
	TotalItems  int            `json:"total_items"`
	Completed   int            `json:"completed"`
	Remaining   int            `json:"remaining"`
	ByCategory  map[string]int `json:"by_category"`
	GeneratedAt time.Time      `json:"generated_at"`
}
