// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/adapters/storage"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// maxPresignExpiry is the longest lifetime S3 accepts for a presigned URL
const maxPresignExpiry = 7 * 24 * time.Hour

// ExportProcessor handles export:list tasks
type ExportProcessor struct {
	shopping ports.ShoppingService
	storage  ports.FileStorage
	jobs     ports.JobTracker
	linkTTL  time.Duration
	logger   *slog.Logger
}

// NewExportProcessor creates a new export processor. Download links live as
// long as the exported object is retained, capped at seven days.
func NewExportProcessor(shopping ports.ShoppingService, storage ports.FileStorage,
	jobs ports.JobTracker, retention time.Duration, logger *slog.Logger) *ExportProcessor {
	if retention <= 0 || retention > maxPresignExpiry {
		retention = maxPresignExpiry
	}
	return &ExportProcessor{
		shopping: shopping,
		storage:  storage,
		jobs:     jobs,
		linkTTL:  retention,
		logger:   logger.With(slog.String("processor", "export")),
	}
}

// ProcessExport writes the list to a workbook, uploads it and stores a
// download link on the job
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	var payload ExportPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}

	return trackJob(ctx, p.jobs, p.logger, payload.JobID, domain.JobExportList, payload.ListID, func(job *domain.Job) error {
		list, err := p.shopping.GetList(ctx, payload.ListID)
		if err != nil {
			return err
		}
		items, err := p.shopping.GetItems(ctx, payload.ListID)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := WriteWorkbook(&buf, list, items); err != nil {
			return err
		}

		key := storage.ExportKey(list.ID, time.Now())
		if _, err := p.storage.Upload(ctx, key, &buf, ContentTypeXLSX); err != nil {
			return fmt.Errorf("failed to upload export: %w", err)
		}

		url, err := p.storage.PresignedURL(ctx, key, p.linkTTL)
		if err != nil {
			return fmt.Errorf("failed to sign export link: %w", err)
		}

		job.ResultURL = url
		job.Processed = len(items)
		return nil
	})
}
