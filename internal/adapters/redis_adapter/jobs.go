// internal/adapters/redis_adapter/jobs.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// JobStore keeps background job status in the cache
type JobStore struct {
	cache ports.CacheRepository
	ttl   time.Duration
}

var _ ports.JobTracker = (*JobStore)(nil)

// NewJobStore creates a job store whose entries expire after ttl
func NewJobStore(cache ports.CacheRepository, ttl time.Duration) *JobStore {
	return &JobStore{cache: cache, ttl: ttl}
}

// Save stores the job, replacing any earlier status
func (s *JobStore) Save(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = job.UpdatedAt
	}
	if err := s.cache.SetWithTTL(ctx, jobKey(job.ID), job, s.ttl); err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

// Get returns the job or domain.ErrNotFound once it expired
func (s *JobStore) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	var job domain.Job
	if err := s.cache.Get(ctx, jobKey(jobID), &job); err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return &job, nil
}

// Claim records that the job's items were applied. Only the first caller
// for a job id gets true until the claim expires with the job status.
func (s *JobStore) Claim(ctx context.Context, jobID string) (bool, error) {
	ok, err := s.cache.SetNX(ctx, claimKey(jobID), time.Now(), s.ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim job %s: %w", jobID, err)
	}
	return ok, nil
}

// Release removes the claim of a job whose work did not complete
func (s *JobStore) Release(ctx context.Context, jobID string) error {
	if err := s.cache.Delete(ctx, claimKey(jobID)); err != nil {
		return fmt.Errorf("failed to release job %s: %w", jobID, err)
	}
	return nil
}

func jobKey(id string) string {
	return ports.CacheKey(ports.PrefixJob, id)
}

func claimKey(id string) string {
	return ports.CacheKey(ports.PrefixJob, id, "claim")
}
