// internal/core/services/shopping.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const summaryTTL = 10 * time.Minute

// ShoppingService handles list and item business logic
type ShoppingService struct {
	lists  ports.ListRepository
	items  ports.ItemRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *ShoppingService implements the ShoppingService interface.
var _ ports.ShoppingService = (*ShoppingService)(nil)

// NewShoppingService creates a new shopping service
func NewShoppingService(lists ports.ListRepository, items ports.ItemRepository,
	cache ports.CacheRepository, logger *slog.Logger) *ShoppingService {
	return &ShoppingService{
		lists:  lists,
		items:  items,
		cache:  cache,
		logger: logger.With(slog.String("service", "shopping")),
	}
}

// CreateList validates and stores a new list
func (s *ShoppingService) CreateList(ctx context.Context, name string) (*domain.ShoppingList, error) {
	list := domain.NewShoppingList(name)
	if err := list.Validate(); err != nil {
		return nil, err
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.logger.InfoContext(ctx, "created shopping list",
		slog.Int64("list_id", list.ID),
		slog.String("name", list.Name))

	return list, nil
}

// GetLists returns all lists, newest first
func (s *ShoppingService) GetLists(ctx context.Context) ([]*domain.ShoppingList, error) {
	lists, err := s.lists.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}
	return lists, nil
}

// GetList returns a single list
func (s *ShoppingService) GetList(ctx context.Context, id int64) (*domain.ShoppingList, error) {
	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

// DeleteList deletes a list together with its items
func (s *ShoppingService) DeleteList(ctx context.Context, id int64) error {
	if err := s.lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	s.invalidateSummary(ctx, id)
	s.logger.InfoContext(ctx, "deleted shopping list", slog.Int64("list_id", id))

	return nil
}

// Summary returns item counts for a list, served from cache when possible
func (s *ShoppingService) Summary(ctx context.Context, listID int64) (*domain.ListSummary, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	var summary domain.ListSummary
	err := s.cache.GetOrSet(ctx, summaryKey(listID), &summary, func() (interface{}, error) {
		fresh, err := s.items.CategorySummary(ctx, listID)
		if err != nil {
			return nil, err
		}
		return fresh, nil
	}, summaryTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return &summary, nil
}

// AddItem validates and stores a new item on the list
func (s *ShoppingService) AddItem(ctx context.Context, listID int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
	item.ListID = listID
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.PrepareForStorage()

	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.InfoContext(ctx, "added shopping item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name))

	return item, nil
}

// AddItems stores the valid items in one batch and returns how many were stored.
// Invalid items are skipped.
func (s *ShoppingService) AddItems(ctx context.Context, listID int64, items []*domain.ShoppingItem) (int, error) {
	valid := make([]*domain.ShoppingItem, 0, len(items))
	for _, item := range items {
		item.ListID = listID
		if err := item.Validate(); err != nil {
			s.logger.DebugContext(ctx, "skipping invalid item",
				slog.String("name", item.Name),
				slog.String("error", err.Error()))
			continue
		}
		item.PrepareForStorage()
		valid = append(valid, item)
	}

	if len(valid) == 0 {
		s.logger.InfoContext(ctx, "no items to save", slog.Int64("list_id", listID))
		return 0, nil
	}

	if err := s.ensureList(ctx, listID); err != nil {
		return 0, err
	}

	if err := s.items.CreateBatch(ctx, valid); err != nil {
		return 0, fmt.Errorf("failed to save items batch: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.InfoContext(ctx, "saved shopping items",
		slog.Int64("list_id", listID),
		slog.Int("count", len(valid)),
		slog.Int("skipped", len(items)-len(valid)))

	return len(valid), nil
}

// GetItems returns the items of a list, open items first
func (s *ShoppingService) GetItems(ctx context.Context, listID int64) ([]*domain.ShoppingItem, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	items, err := s.items.FindByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetItem returns a single item of a list
func (s *ShoppingService) GetItem(ctx context.Context, listID, id int64) (*domain.ShoppingItem, error) {
	item, err := s.items.FindByID(ctx, listID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem updates the editable fields of an existing item
func (s *ShoppingService) UpdateItem(ctx context.Context, listID int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
	if item.ID <= 0 {
		return nil, domain.NewValidationError("item id is required for update")
	}

	item.ListID = listID
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.PrepareForStorage()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.InfoContext(ctx, "updated shopping item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", item.ID))

	return item, nil
}

// SetItemCompleted toggles the completion flag of an item
func (s *ShoppingService) SetItemCompleted(ctx context.Context, listID, id int64, completed bool) error {
	if err := s.items.SetCompleted(ctx, id, listID, completed); err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.DebugContext(ctx, "updated item status",
		slog.Int64("item_id", id),
		slog.Bool("completed", completed))

	return nil
}

// DeleteItem removes an item from its list
func (s *ShoppingService) DeleteItem(ctx context.Context, listID, id int64) error {
	if err := s.items.Delete(ctx, id, listID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.InfoContext(ctx, "deleted shopping item",
		slog.Int64("list_id", listID),
		slog.Int64("item_id", id))

	return nil
}

// DeleteCompleted removes every completed item of a list
func (s *ShoppingService) DeleteCompleted(ctx context.Context, listID int64) (int64, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return 0, err
	}

	deleted, err := s.items.DeleteCompleted(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed items: %w", err)
	}

	s.invalidateSummary(ctx, listID)
	s.logger.InfoContext(ctx, "deleted completed items",
		slog.Int64("list_id", listID),
		slog.Int64("count", deleted))

	return deleted, nil
}

func (s *ShoppingService) ensureList(ctx context.Context, listID int64) error {
	exists, err := s.lists.Exists(ctx, listID)
	if err != nil {
		return fmt.Errorf("failed to check list existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("list %d: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// invalidateSummary drops the cached summary. Cache failures are logged only.
func (s *ShoppingService) invalidateSummary(ctx context.Context, listID int64) {
	if err := s.cache.Delete(ctx, summaryKey(listID)); err != nil && !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.WarnContext(ctx, "failed to invalidate summary cache",
			slog.Int64("list_id", listID),
			slog.String("error", err.Error()))
	}
}

func summaryKey(listID int64) string {
	return ports.CacheKey(ports.PrefixSummary, strconv.FormatInt(listID, 10))
}
