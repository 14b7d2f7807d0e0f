// internal/adapters/queue/asynq.go
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
	"github.com/ammerola/shoplist-be/internal/workers"
)

const (
	defaultMaxRetry  = 3
	defaultRetention = 24 * time.Hour
)

// Enqueuer is the part of *asynq.Client the queue needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskQueue enqueues background jobs on asynq and records their status
type TaskQueue struct {
	client    Enqueuer
	jobs      ports.JobTracker
	maxRetry  int
	retention time.Duration
	logger    *slog.Logger
}

var _ ports.TaskQueue = (*TaskQueue)(nil)

// NewTaskQueue creates a task queue. maxRetry and retention fall back to
// defaults when not positive.
func NewTaskQueue(client Enqueuer, jobs ports.JobTracker, maxRetry int, retention time.Duration, logger *slog.Logger) *TaskQueue {
	if maxRetry <= 0 {
		maxRetry = defaultMaxRetry
	}
	if retention <= 0 {
		retention = defaultRetention
	}
	return &TaskQueue{
		client:    client,
		jobs:      jobs,
		maxRetry:  maxRetry,
		retention: retention,
		logger:    logger.With(slog.String("adapter", "asynq")),
	}
}

// EnqueueExport queues an S3 export of the list
func (q *TaskQueue) EnqueueExport(ctx context.Context, listID int64) (*domain.Job, error) {
	job := domain.NewJob(domain.JobExportList, listID)
	task, err := workers.NewExportTask(workers.ExportPayload{JobID: job.ID, ListID: listID})
	if err != nil {
		return nil, err
	}
	return q.enqueue(ctx, job, task, workers.QueueDefault)
}

// EnqueueImport queues the import of an uploaded file into the list
func (q *TaskQueue) EnqueueImport(ctx context.Context, listID int64, jobType domain.JobType, fileKey string) (*domain.Job, error) {
	job := domain.NewJob(jobType, listID)
	task, err := workers.NewImportTask(jobType, workers.ImportPayload{JobID: job.ID, ListID: listID, FileKey: fileKey})
	if err != nil {
		return nil, err
	}
	return q.enqueue(ctx, job, task, workers.QueueDefault)
}

// EnqueueTelegram queues sending the list to a Telegram chat
func (q *TaskQueue) EnqueueTelegram(ctx context.Context, listID, chatID int64) (*domain.Job, error) {
	job := domain.NewJob(domain.JobShareChat, listID)
	task, err := workers.NewTelegramTask(workers.TelegramPayload{JobID: job.ID, ListID: listID, ChatID: chatID})
	if err != nil {
		return nil, err
	}
	return q.enqueue(ctx, job, task, workers.QueueCritical)
}

// Status returns the last recorded state of a job
func (q *TaskQueue) Status(ctx context.Context, jobID string) (*domain.Job, error) {
	return q.jobs.Get(ctx, jobID)
}

func (q *TaskQueue) enqueue(ctx context.Context, job *domain.Job, task *asynq.Task, queueName string) (*domain.Job, error) {
	// Saved first so the worker never sees a job the API cannot report on
	if err := q.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	info, err := q.client.EnqueueContext(ctx, task,
		asynq.TaskID(job.ID),
		asynq.Queue(queueName),
		asynq.MaxRetry(q.maxRetry),
		asynq.Retention(q.retention))
	if err != nil {
		job.Fail(err)
		if saveErr := q.jobs.Save(ctx, job); saveErr != nil {
			q.logger.WarnContext(ctx, "failed to save job status",
				slog.String("job_id", job.ID),
				slog.String("error", saveErr.Error()))
		}
		return nil, fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	q.logger.InfoContext(ctx, "job queued",
		slog.String("job_id", job.ID),
		slog.String("task_id", info.ID),
		slog.String("type", task.Type()),
		slog.String("queue", info.Queue),
		slog.Int64("list_id", job.ListID))

	return job, nil
}
