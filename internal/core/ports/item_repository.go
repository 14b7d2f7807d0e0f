// internal/core/ports/item_repository.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ItemRepository defines the persistence port for shopping items.
// Every method that takes a listID only touches rows of that list.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.ShoppingItem) error
	CreateBatch(ctx context.Context, items []*domain.ShoppingItem) error
	FindByList(ctx context.Context, listID int64) ([]*domain.ShoppingItem, error)
	FindByID(ctx context.Context, listID, id int64) (*domain.ShoppingItem, error)
	Update(ctx context.Context, item *domain.ShoppingItem) error
	SetCompleted(ctx context.Context, id, listID int64, completed bool) error
	Delete(ctx context.Context, id, listID int64) error
	DeleteCompleted(ctx context.Context, listID int64) (int64, error)
	CategorySummary(ctx context.Context, listID int64) (*domain.ListSummary, error)
}
