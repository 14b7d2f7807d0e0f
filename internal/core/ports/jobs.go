// internal/core/ports/jobs.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// TaskQueue enqueues background jobs and tracks their status
type TaskQueue interface {
	EnqueueExport(ctx context.Context, listID int64) (*domain.Job, error)
	EnqueueImport(ctx context.Context, listID int64, jobType domain.JobType, fileKey string) (*domain.Job, error)
	EnqueueTelegram(ctx context.Context, listID, chatID int64) (*domain.Job, error)
	Status(ctx context.Context, jobID string) (*domain.Job, error)
}

// JobTracker persists job status so the API can report on it
type JobTracker interface {
	Save(ctx context.Context, job *domain.Job) error
	Get(ctx context.Context, jobID string) (*domain.Job, error)

	// Claim marks the job's side effects as applied. It reports false when
	// an earlier delivery of the same task already claimed it.
	Claim(ctx context.Context, jobID string) (bool, error)
	// Release drops a claim so a retry can apply the job again
	Release(ctx context.Context, jobID string) error
}
