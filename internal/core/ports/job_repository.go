package ports

import (
	"context"
	"time"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

// ListJobsFilter carries all query parameters for listing jobs.
// Only active jobs are ever returned; the repository adds that constraint itself.
type ListJobsFilter struct {
	Department   string // optional: exact match
	Location     string // optional: case-insensitive substring
	Type         string // optional: exact match
	Level        string // optional: exact match
	Search       string // optional: case-insensitive substring on title, description or skills
	FeaturedOnly bool   // true = only featured jobs
	Page         int    // 1-based
	Limit        int    // rows per page (normalized by the service)
}

// JobUpdate is a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title               *string
	Department          *string
	Location            *string
	Type                *string
	Level               *string
	Description         *string
	Requirements        []string
	Responsibilities    []string
	Benefits            []string
	Skills              []string
	Salary              *domain.Salary
	IsActive            *bool
	Featured            *bool
	ApplicationDeadline *time.Time
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindByID retrieves a job by its id. A malformed id is reported as not found.
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns a page of active jobs matching filter, sorted featured-first
	// then posted date descending, and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	Update(ctx context.Context, id string, upd JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
