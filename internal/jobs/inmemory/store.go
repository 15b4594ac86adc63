// Package inmemory provides channel- and map-backed implementations of
// the job queue and job store, suitable for a single-instance service.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kellymillerdev/ai-bank/internal/jobs"
)

// Store is an in-memory JobStore. Data is lost on restart.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*jobs.SuggestionJob
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*jobs.SuggestionJob),
	}
}

// SaveJob saves or updates a job. Copies are stored so callers cannot
// mutate tracked state afterwards.
func (s *Store) SaveJob(ctx context.Context, job *jobs.SuggestionJob) error {
	if job.JobID == "" {
		return fmt.Errorf("job ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobCopy := *job
	s.jobs[job.JobID] = &jobCopy
	return nil
}

// GetJob retrieves a job by ID.
func (s *Store) GetJob(ctx context.Context, jobID string) (*jobs.SuggestionJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	jobCopy := *job
	return &jobCopy, nil
}

var _ jobs.JobStore = (*Store)(nil)
