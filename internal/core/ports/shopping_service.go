// internal/core/ports/shopping_service.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ShoppingService defines the application service port for lists and items.
type ShoppingService interface {
	CreateList(ctx context.Context, name string) (*domain.ShoppingList, error)
	GetLists(ctx context.Context) ([]*domain.ShoppingList, error)
	GetList(ctx context.Context, id int64) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, id int64) error
	Summary(ctx context.Context, listID int64) (*domain.ListSummary, error)

	AddItem(ctx context.Context, listID int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error)
	AddItems(ctx context.Context, listID int64, items []*domain.ShoppingItem) (int, error)
	GetItems(ctx context.Context, listID int64) ([]*domain.ShoppingItem, error)
	GetItem(ctx context.Context, listID, id int64) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, listID int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error)
	SetItemCompleted(ctx context.Context, listID, id int64, completed bool) error
	DeleteItem(ctx context.Context, listID, id int64) error
	DeleteCompleted(ctx context.Context, listID int64) (int64, error)
}
