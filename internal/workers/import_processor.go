// internal/workers/import_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// itemParser extracts items from an uploaded file, reporting how many
// entries it had to skip
type itemParser func(ctx context.Context, data []byte) ([]*domain.ShoppingItem, int, error)

// ImportProcessor handles import:excel and import:pdf tasks
type ImportProcessor struct {
	shopping ports.ShoppingService
	storage  ports.FileStorage
	jobs     ports.JobTracker
	logger   *slog.Logger
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(shopping ports.ShoppingService, storage ports.FileStorage,
	jobs ports.JobTracker, logger *slog.Logger) *ImportProcessor {
	return &ImportProcessor{
		shopping: shopping,
		storage:  storage,
		jobs:     jobs,
		logger:   logger.With(slog.String("processor", "import")),
	}
}

func (p *ImportProcessor) run(ctx context.Context, t *asynq.Task, jobType domain.JobType, parse itemParser) error {
	var payload ImportPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "processing import",
		slog.String("job_id", payload.JobID),
		slog.String("type", string(jobType)),
		slog.Int64("list_id", payload.ListID),
		slog.String("file_key", payload.FileKey))

	return trackJob(ctx, p.jobs, p.logger, payload.JobID, jobType, payload.ListID, func(job *domain.Job) error {
		data, err := p.storage.Download(ctx, payload.FileKey)
		if err != nil {
			return fmt.Errorf("failed to fetch import file: %w", err)
		}

		items, skipped, err := parse(ctx, data)
		if err != nil {
			return err
		}

		claimed, err := p.jobs.Claim(ctx, payload.JobID)
		if err != nil {
			return err
		}
		if !claimed {
			// A redelivered task; the items are already on the list.
			p.logger.InfoContext(ctx, "import already applied",
				slog.String("job_id", payload.JobID),
				slog.Int64("list_id", payload.ListID))
			p.removeUpload(ctx, payload.FileKey)
			return nil
		}

		saved, err := p.shopping.AddItems(ctx, payload.ListID, items)
		if err != nil {
			if relErr := p.jobs.Release(ctx, payload.JobID); relErr != nil {
				p.logger.WarnContext(ctx, "failed to release import claim",
					slog.String("job_id", payload.JobID),
					slog.String("error", relErr.Error()))
			}
			return err
		}

		job.Processed = saved
		job.Skipped = skipped + len(items) - saved

		p.removeUpload(ctx, payload.FileKey)
		return nil
	})
}

func (p *ImportProcessor) removeUpload(ctx context.Context, key string) {
	if err := p.storage.Delete(ctx, key); err != nil {
		p.logger.WarnContext(ctx, "failed to delete import file",
			slog.String("file_key", key),
			slog.String("error", err.Error()))
	}
}
