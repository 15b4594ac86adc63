// Package jobs defines the asynchronous suggestion job model and the
// queue abstractions it runs on.
package jobs

import (
	"context"
	"time"
)

// JobStatus represents the current status of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// SuggestionJob asks for category-correction suggestions over the current
// transaction batch. The batch itself is not carried in the job; the
// handler reads it from the store when the job runs, so suggestion work
// never blocks ingestion or query paths.
type SuggestionJob struct {
	JobID       string            `json:"job_id"`
	Status      JobStatus         `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Error       string            `json:"error,omitempty"`
	Suggestions map[string]string `json:"suggestions,omitempty"` // description -> suggested category id
}

// Publisher enqueues suggestion jobs.
type Publisher interface {
	PublishSuggestion(ctx context.Context, job *SuggestionJob) error
	Close() error
}

// Consumer processes queued jobs with a handler.
type Consumer interface {
	Start(ctx context.Context, handler JobHandler) error
	Stop(ctx context.Context) error
}

// JobHandler processes one job. The returned suggestions are recorded on
// the job; a non-nil error marks it failed.
type JobHandler func(ctx context.Context, job *SuggestionJob) (map[string]string, error)

// JobStore tracks job state for status queries.
type JobStore interface {
	SaveJob(ctx context.Context, job *SuggestionJob) error
	GetJob(ctx context.Context, jobID string) (*SuggestionJob, error)
}
