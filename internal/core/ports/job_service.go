package ports

import (
	"context"
	"time"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

// SalaryInput holds an optional compensation range.
type SalaryInput struct {
	Min      int
	Max      int
	Currency string
}

// CreateJobInput carries all data needed to publish a job posting.
type CreateJobInput struct {
	Title               string
	Department          string
	Location            string
	Type                string
	Level               string
	Description         string
	Requirements        []string
	Responsibilities    []string
	Benefits            []string
	Skills              []string
	Salary              *SalaryInput
	Featured            bool
	IsActive            *bool // nil = active
	ApplicationDeadline *time.Time
}

// ListJobsInput carries all parameters for the public listing endpoint.
type ListJobsInput struct {
	Department string
	Location   string
	Type       string
	Level      string
	Search     string
	Featured   bool
	Page       int
	Limit      int
}

// ListJobsResult is returned by List.
type ListJobsResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobDetail is the full job view returned by Get, including the view counter.
type JobDetail struct {
	Job   *domain.Job
	Views int64
}

// JobService defines use-case operations for job postings.
type JobService interface {
	List(ctx context.Context, input ListJobsInput) (*ListJobsResult, error)
	Get(ctx context.Context, id string) (*JobDetail, error)
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, id string, upd JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
