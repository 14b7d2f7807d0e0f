// internal/core/ports/list_repository.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ListRepository defines the persistence port for shopping lists.
// This interface is implemented by the database adapter.
type ListRepository interface {
	Create(ctx context.Context, list *domain.ShoppingList) error
	FindAll(ctx context.Context) ([]*domain.ShoppingList, error)
	FindByID(ctx context.Context, id int64) (*domain.ShoppingList, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
