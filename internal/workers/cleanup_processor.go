// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/adapters/storage"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	storage   ports.FileStorage
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storage ports.FileStorage, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage:   storage,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupExports removes exported workbooks and stale import uploads older
// than the retention period
func (p *CleanupProcessor) CleanupExports(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up stored files",
		slog.Duration("retention", p.retention))

	cutoff := time.Now().Add(-p.retention)
	var deleted, failed int

	for _, prefix := range []string{storage.ExportPrefix, storage.ImportPrefix} {
		objects, err := p.storage.List(ctx, prefix)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", prefix, err)
		}

		for _, obj := range objects {
			if !obj.LastModified.Before(cutoff) {
				continue
			}
			if err := p.storage.Delete(ctx, obj.Key); err != nil {
				failed++
				p.logger.WarnContext(ctx, "failed to delete stored file",
					slog.String("key", obj.Key),
					slog.String("error", err.Error()))
				continue
			}
			deleted++
		}
	}

	p.logger.InfoContext(ctx, "stored files cleaned up",
		slog.Int("files_deleted", deleted),
		slog.Int("files_failed", failed))

	return nil
}
