package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/core/domain"
)

func TestJobStore(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	store := redis_a.NewJobStore(cache, time.Hour)

	t.Run("saves_and_reloads_job", func(t *testing.T) {
		job := domain.NewJob(domain.JobExportList, 4)
		require.NoError(t, store.Save(ctx, job))

		job.Processed = 12
		job.ResultURL = "https://files.example.com/a.xlsx"
		job.Finish()
		require.NoError(t, store.Save(ctx, job))

		got, err := store.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobCompleted, got.Status)
		assert.Equal(t, int64(4), got.ListID)
		assert.Equal(t, 12, got.Processed)
		assert.Equal(t, job.ResultURL, got.ResultURL)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("fills_created_at", func(t *testing.T) {
		job := &domain.Job{ID: "bare", Type: domain.JobImportPDF, Status: domain.JobQueued}
		require.NoError(t, store.Save(ctx, job))
		assert.False(t, job.CreatedAt.IsZero())
		assert.Equal(t, job.CreatedAt, job.UpdatedAt)
	})

	t.Run("unknown_job_is_not_found", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("expired_job_is_not_found", func(t *testing.T) {
		job := domain.NewJob(domain.JobShareChat, 1)
		require.NoError(t, store.Save(ctx, job))

		mr.FastForward(2 * time.Hour)

		_, err := store.Get(ctx, job.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestJobStore_Claim(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	store := redis_a.NewJobStore(cache, time.Hour)

	t.Run("first_claim_wins", func(t *testing.T) {
		ok, err := store.Claim(ctx, "import-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Claim(ctx, "import-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release_allows_new_claim", func(t *testing.T) {
		ok, err := store.Claim(ctx, "import-2")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, store.Release(ctx, "import-2"))

		ok, err = store.Claim(ctx, "import-2")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("claim_expires_with_job_status", func(t *testing.T) {
		ok, err := store.Claim(ctx, "import-3")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Hour, mr.TTL("job:import-3:claim"))
	})

	t.Run("redis_down", func(t *testing.T) {
		mr.Close()
		_, err := store.Claim(ctx, "import-4")
		assert.Error(t, err)
	})
}
