// internal/handlers/jobs.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// JobHandler reports on background jobs
type JobHandler struct {
	queue  ports.TaskQueue
	logger *slog.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(queue ports.TaskQueue, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		queue:  queue,
		logger: logger.With(slog.String("handler", "jobs")),
	}
}

// Status handles GET /api/v1/jobs/{id}
func (h *JobHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("id")

	job, err := h.queue.Status(ctx, jobID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to get job status")
		return
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, http.StatusOK, job)
}
