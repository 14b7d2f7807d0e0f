// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const (
	TypeExportList     = "export:list"
	TypeImportExcel    = "import:excel"
	TypeImportPDF      = "import:pdf"
	TypeShareTelegram  = "share:telegram"
	TypeCleanupExports = "cleanup:exports"
)

// Queue names used by the default ASYNQ_QUEUES setting
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// ExportPayload asks for a list to be exported to file storage
type ExportPayload struct {
	JobID  string `json:"job_id"`
	ListID int64  `json:"list_id"`
}

// ImportPayload points at an uploaded file whose items go into a list
type ImportPayload struct {
	JobID   string `json:"job_id"`
	ListID  int64  `json:"list_id"`
	FileKey string `json:"file_key"`
}

// TelegramPayload asks for a list to be sent to a Telegram chat
type TelegramPayload struct {
	JobID  string `json:"job_id"`
	ListID int64  `json:"list_id"`
	ChatID int64  `json:"chat_id"`
}

// NewExportTask creates an export:list task
func NewExportTask(p ExportPayload, opts ...asynq.Option) (*asynq.Task, error) {
	return newTask(TypeExportList, p, opts...)
}

// NewImportTask creates the import task matching jobType
func NewImportTask(jobType domain.JobType, p ImportPayload, opts ...asynq.Option) (*asynq.Task, error) {
	switch jobType {
	case domain.JobImportExcel:
		return newTask(TypeImportExcel, p, opts...)
	case domain.JobImportPDF:
		return newTask(TypeImportPDF, p, opts...)
	default:
		return nil, domain.NewValidationError("unsupported import type %q", jobType)
	}
}

// NewTelegramTask creates a share:telegram task
func NewTelegramTask(p TelegramPayload, opts ...asynq.Option) (*asynq.Task, error) {
	return newTask(TypeShareTelegram, p, opts...)
}

// NewCleanupTask creates the periodic cleanup:exports task
func NewCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeCleanupExports, nil, asynq.Queue(QueueLow))
}

func newTask(typename string, payload any, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", typename, err)
	}
	return asynq.NewTask(typename, b, opts...), nil
}

// decodePayload unmarshals a task payload. A payload that cannot be decoded
// will never succeed, so retries are skipped.
func decodePayload(t *asynq.Task, dest any) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	return nil
}

// trackJob runs fn while keeping the job status in the tracker current.
// Errors that retrying cannot fix mark the job failed straight away; others
// leave it queued until asynq runs out of retries.
func trackJob(ctx context.Context, jobs ports.JobTracker, logger *slog.Logger,
	jobID string, jobType domain.JobType, listID int64, fn func(job *domain.Job) error) error {
	job, err := jobs.Get(ctx, jobID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "failed to load job status",
				slog.String("job_id", jobID),
				slog.String("error", err.Error()))
		}
		job = &domain.Job{ID: jobID, Type: jobType, ListID: listID}
	}

	job.Start()
	saveJob(ctx, jobs, logger, job)

	runErr := fn(job)
	if runErr == nil {
		job.Finish()
		saveJob(ctx, jobs, logger, job)
		logger.InfoContext(ctx, "job completed",
			slog.String("job_id", job.ID),
			slog.String("type", string(job.Type)),
			slog.Int("processed", job.Processed),
			slog.Int("skipped", job.Skipped))
		return nil
	}

	permanent := isPermanent(runErr)
	if permanent || isLastAttempt(ctx) {
		job.Fail(runErr)
	} else {
		job.Status = domain.JobQueued
		job.Error = runErr.Error()
	}
	saveJob(ctx, jobs, logger, job)

	logger.ErrorContext(ctx, "job failed",
		slog.String("job_id", job.ID),
		slog.String("type", string(job.Type)),
		slog.Bool("permanent", permanent),
		slog.String("error", runErr.Error()))

	if permanent && !errors.Is(runErr, asynq.SkipRetry) {
		return fmt.Errorf("%w: %w", runErr, asynq.SkipRetry)
	}
	return runErr
}

func saveJob(ctx context.Context, jobs ports.JobTracker, logger *slog.Logger, job *domain.Job) {
	if err := jobs.Save(ctx, job); err != nil {
		logger.WarnContext(ctx, "failed to save job status",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, asynq.SkipRetry) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, ErrMessengerDisabled)
}

func isLastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
