package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/taskmasterpeace/bookpress/pkg/errcodes"
)

type RetrieveJobOptions struct {
	ID *string
}

type ListJobsOptions struct {
	Limit    *int
	Offset   *int
	Statuses []string
}

// Service is an in-memory job store. Jobs are returned by value copy so
// callers can't race the store's internal state.
type Service struct {
	mu        sync.Mutex
	jobs      map[string]*Job
	order     []string
	artifacts map[string]map[string][]byte
}

func NewService() *Service {
	return &Service{
		jobs:      map[string]*Job{},
		artifacts: map[string]map[string][]byte{},
	}
}

func (svc *Service) CreateJob(_ context.Context, job *Job) error {
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = job.CreatedAt

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = JobStatusPending
	}

	if job.Data == "" && job.DataParsed != nil {
		data, err := json.Marshal(job.DataParsed)
		if err != nil {
			return errors.WithStack(err)
		}
		job.Data = string(data)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	stored := *job
	svc.jobs[job.ID] = &stored
	svc.order = append(svc.order, job.ID)

	return nil
}

func (svc *Service) RetrieveJob(_ context.Context, opts RetrieveJobOptions) (*Job, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if opts.ID == nil {
		return nil, errcodes.NotFound("Job")
	}
	stored, ok := svc.jobs[*opts.ID]
	if !ok {
		return nil, errcodes.NotFound("Job")
	}

	job := *stored
	if job.Data != "" {
		if err := job.UnmarshalData(); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return &job, nil
}

func (svc *Service) ListJobs(_ context.Context, opts ListJobsOptions) ([]*Job, int, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	matched := []*Job{}
	for _, id := range svc.order {
		stored := svc.jobs[id]
		if len(opts.Statuses) > 0 && !containsString(opts.Statuses, stored.Status) {
			continue
		}
		job := *stored
		matched = append(matched, &job)
	}
	total := len(matched)

	if opts.Offset != nil {
		if *opts.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[*opts.Offset:]
		}
	}
	if opts.Limit != nil && *opts.Limit < len(matched) {
		matched = matched[:*opts.Limit]
	}

	return matched, total, nil
}

// ClaimNextPending atomically moves the oldest pending job to in_progress and
// returns it. Returns nil when nothing is pending.
func (svc *Service) ClaimNextPending(_ context.Context, processID string) (*Job, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for _, id := range svc.order {
		stored := svc.jobs[id]
		if stored.Status != JobStatusPending {
			continue
		}

		stored.Status = JobStatusInProgress
		stored.ProcessID = &processID
		stored.UpdatedAt = time.Now()

		job := *stored
		if job.Data != "" {
			if err := job.UnmarshalData(); err != nil {
				return nil, errors.WithStack(err)
			}
		}
		return &job, nil
	}

	return nil, nil
}

func (svc *Service) UpdateJob(_ context.Context, job *Job) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	stored, ok := svc.jobs[job.ID]
	if !ok {
		return errcodes.NotFound("Job")
	}

	stored.Status = job.Status
	stored.Error = job.Error
	stored.Artifacts = append([]string{}, job.Artifacts...)
	stored.UpdatedAt = time.Now()
	job.UpdatedAt = stored.UpdatedAt

	return nil
}

// StoreArtifact attaches finished PDF bytes to a job under the artifact's
// filename.
func (svc *Service) StoreArtifact(_ context.Context, jobID, filename string, data []byte) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.jobs[jobID]; !ok {
		return errcodes.NotFound("Job")
	}

	if svc.artifacts[jobID] == nil {
		svc.artifacts[jobID] = map[string][]byte{}
	}
	svc.artifacts[jobID][filename] = data

	return nil
}

func (svc *Service) RetrieveArtifact(_ context.Context, jobID, filename string) ([]byte, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	data, ok := svc.artifacts[jobID][filename]
	if !ok {
		return nil, errcodes.NotFound("Artifact")
	}

	return data, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
