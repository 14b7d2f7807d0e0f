// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ItemOrder lists open items first, then groups by category, then sorts by name.
const ItemOrder = "is_completed ASC, category ASC NULLS LAST, name ASC"

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new shopping item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shopping_items")),
	}
}

var itemSelect = squirrel.Select(
	"id", "list_id", "name", "is_completed", "barcode",
	"quantity", "weight", "category", "icon", "created_at",
).From("shopping_items").PlaceholderFormat(squirrel.Dollar)

const insertItemSQL = `
	INSERT INTO shopping_items (
		list_id, name, is_completed, barcode, quantity, weight, category, icon, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at`

func insertItemArgs(item *domain.ShoppingItem) []interface{} {
	return []interface{}{
		item.ListID, item.Name, item.IsCompleted, nullString(item.Barcode),
		item.Quantity, item.Weight, nullString(item.Category), nullString(item.Icon),
		item.CreatedAt,
	}
}

// Create inserts an item and fills in its id
func (r *itemRepository) Create(ctx context.Context, item *domain.ShoppingItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	err := r.db.QueryRow(ctx, insertItemSQL, insertItemArgs(item)...).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shopping item: %w", err)
	}

	r.logger.DebugContext(ctx, "shopping item saved",
		slog.Int64("item_id", item.ID),
		slog.Int64("list_id", item.ListID))

	return nil
}

// CreateBatch inserts items in one transaction
func (r *itemRepository) CreateBatch(ctx context.Context, items []*domain.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, item := range items {
			if item.CreatedAt.IsZero() {
				item.CreatedAt = time.Now()
			}
			batch.Queue(insertItemSQL, insertItemArgs(item)...)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i, item := range items {
			if err := br.QueryRow().Scan(&item.ID, &item.CreatedAt); err != nil {
				return fmt.Errorf("failed to save item %d: %w", i, err)
			}
		}

		return nil
	})
}

// FindByList returns the items of a list in display order
func (r *itemRepository) FindByList(ctx context.Context, listID int64) ([]*domain.ShoppingItem, error) {
	query, args, err := itemSelect.
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy(ItemOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping items: %w", err)
	}

	items, err := ScanMany(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan shopping items: %w", err)
	}
	return items, nil
}

// FindByID returns an item of the given list or domain.ErrNotFound
func (r *itemRepository) FindByID(ctx context.Context, listID, id int64) (*domain.ShoppingItem, error) {
	query, args, err := itemSelect.
		Where(squirrel.Eq{"id": id, "list_id": listID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := ScanOne(r.db.QueryRow(ctx, query, args...), scanItem)
	if err != nil {
		return nil, fmt.Errorf("shopping item %d: %w", id, err)
	}
	return item, nil
}

// Update writes the editable fields of an item
func (r *itemRepository) Update(ctx context.Context, item *domain.ShoppingItem) error {
	if item.ID <= 0 {
		return domain.NewValidationError("item id is required for update")
	}

	query := `
		UPDATE shopping_items SET
			name = $3, quantity = $4, weight = $5, category = $6, barcode = $7
		WHERE id = $1 AND list_id = $2
		RETURNING is_completed, icon, created_at`

	var icon sql.NullString
	err := r.db.QueryRow(ctx, query,
		item.ID, item.ListID, item.Name, item.Quantity, item.Weight,
		nullString(item.Category), nullString(item.Barcode),
	).Scan(&item.IsCompleted, &icon, &item.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("shopping item %d: %w", item.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	item.Icon = icon.String

	r.logger.DebugContext(ctx, "shopping item updated", slog.Int64("item_id", item.ID))
	return nil
}

// SetCompleted sets the completion flag of an item, scoped to its list
func (r *itemRepository) SetCompleted(ctx context.Context, id, listID int64, completed bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE shopping_items SET is_completed = $3 WHERE id = $1 AND list_id = $2`,
		id, listID, completed)
	if err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an item, scoped to its list
func (r *itemRepository) Delete(ctx context.Context, id, listID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE id = $1 AND list_id = $2`, id, listID)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping item %d: %w", id, domain.ErrNotFound)
	}

	r.logger.DebugContext(ctx, "shopping item deleted",
		slog.Int64("item_id", id),
		slog.Int64("list_id", listID))
	return nil
}

// DeleteCompleted removes the completed items of a list
func (r *itemRepository) DeleteCompleted(ctx context.Context, listID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE list_id = $1 AND is_completed = TRUE`, listID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed items: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CategorySummary counts items of a list per category
func (r *itemRepository) CategorySummary(ctx context.Context, listID int64) (*domain.ListSummary, error) {
	query, args, err := squirrel.Select(
		"COALESCE(i.category, '')",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE i.is_completed)",
	).
		From("shopping_items i").
		Where(squirrel.Eq{"i.list_id": listID}).
		GroupBy("i.category").
		OrderBy("i.category ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build summary query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	summary := &domain.ListSummary{
		ListID:      listID,
		ByCategory:  make(map[string]int),
		GeneratedAt: time.Now(),
	}

	for rows.Next() {
		var category string
		var total, completed int
		if err := rows.Scan(&category, &total, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}

		item := domain.ShoppingItem{Category: category}
		summary.ByCategory[item.DisplayCategory()] += total
		summary.TotalItems += total
		summary.Completed += completed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary: %w", err)
	}

	summary.Remaining = summary.TotalItems - summary.Completed

	var name string
	if err := r.db.QueryRow(ctx, `SELECT name FROM shopping_lists WHERE id = $1`, listID).Scan(&name); err == nil {
		summary.Name = name
	}

	return summary, nil
}

func scanItem(row pgx.Row) (*domain.ShoppingItem, error) {
	item := &domain.ShoppingItem{}
	var barcode, category, icon sql.NullString
	var weight decimal.NullDecimal

	err := row.Scan(
		&item.ID, &item.ListID, &item.Name, &item.IsCompleted, &barcode,
		&item.Quantity, &weight, &category, &icon, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Barcode = barcode.String
	item.Category = category.String
	item.Icon = icon.String
	if weight.Valid {
		w := weight.Decimal
		item.Weight = &w
	}

	return item, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
