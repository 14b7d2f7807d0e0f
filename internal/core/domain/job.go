// internal/core/domain/job.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobType identifies a background job
type JobType string

const (
	JobExportList  JobType = "export_list"
	JobImportExcel JobType = "import_excel"
	JobImportPDF   JobType = "import_pdf"
	JobShareChat   JobType = "share_telegram"
)

// JobStatus is the lifecycle state of a background job
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks a background task enqueued on behalf of a list
type Job struct {
	ID        string    `json:"id"`
	Type      JobType   `json:"type"`
	Status    JobStatus `json:"status"`
	ListID    int64     `json:"list_id"`
	ResultURL string    `json:"result_url,omitempty"`
	Processed int       `json:"processed,omitempty"`
	Skipped   int       `json:"skipped,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewJob creates a queued job with a fresh id
func NewJob(jobType JobType, listID int64) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Type:      jobType,
		Status:    JobQueued,
		ListID:    listID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Start marks the job running
func (j *Job) Start() {
	j.Status = JobRunning
	j.Error = ""
	j.UpdatedAt = time.Now()
}

// Done reports whether the job reached a final state
func (j *Job) Done() bool {
	return j.Status == JobCompleted || j.Status == JobFailed
}

// Finish marks the job completed
func (j *Job) Finish() {
	j.Status = JobCompleted
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed with the given error
func (j *Job) Fail(err error) {
	j.Status = JobFailed
	j.Error = err.Error()
	j.UpdatedAt = time.Now()
}
