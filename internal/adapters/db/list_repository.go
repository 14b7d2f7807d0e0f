// internal/adapters/db/list_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// listRepository implements ports.ListRepository
type listRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewListRepository creates a new shopping list repository
func NewListRepository(db *Database, logger *slog.Logger) ports.ListRepository {
	return &listRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shopping_lists")),
	}
}

var listSelect = squirrel.Select(
	"l.id", "l.name", "l.created_at",
	"(SELECT COUNT(*) FROM shopping_items i WHERE i.list_id = l.id)",
).From("shopping_lists l").PlaceholderFormat(squirrel.Dollar)

// Create inserts a list and fills in its id and creation time
func (r *listRepository) Create(ctx context.Context, list *domain.ShoppingList) error {
	query := `
		INSERT INTO shopping_lists (name, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at`

	if err := r.db.QueryRow(ctx, query, list.Name, list.CreatedAt).Scan(&list.ID, &list.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert shopping list: %w", err)
	}

	r.logger.DebugContext(ctx, "shopping list saved", slog.Int64("list_id", list.ID))
	return nil
}

// FindAll returns every list, newest first
func (r *listRepository) FindAll(ctx context.Context) ([]*domain.ShoppingList, error) {
	query, args, err := listSelect.OrderBy("l.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}

	lists, err := ScanMany(rows, scanList)
	if err != nil {
		return nil, fmt.Errorf("failed to scan shopping lists: %w", err)
	}
	return lists, nil
}

// FindByID returns a list or domain.ErrNotFound
func (r *listRepository) FindByID(ctx context.Context, id int64) (*domain.ShoppingList, error) {
	query, args, err := listSelect.Where(squirrel.Eq{"l.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	list, err := ScanOne(r.db.QueryRow(ctx, query, args...), scanList)
	if err != nil {
		return nil, fmt.Errorf("shopping list %d: %w", id, err)
	}
	return list, nil
}

// Delete removes a list. Its items are removed by the foreign key cascade.
func (r *listRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping list %d: %w", id, domain.ErrNotFound)
	}

	r.logger.DebugContext(ctx, "shopping list deleted", slog.Int64("list_id", id))
	return nil
}

// Exists reports whether a list with the id exists
func (r *listRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := r.db.Exists(ctx, `SELECT 1 FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check shopping list existence: %w", err)
	}
	return exists, nil
}

func scanList(row pgx.Row) (*domain.ShoppingList, error) {
	list := &domain.ShoppingList{}
	if err := row.Scan(&list.ID, &list.Name, &list.CreatedAt, &list.ItemCount); err != nil {
		return nil, err
	}
	return list, nil
}
