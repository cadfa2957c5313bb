package ports

import (
	"context"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

// ListApplicationsFilter carries the query parameters for listing applications.
// UserID is set by the service layer for non-admin callers and must win over
// any caller-supplied filter.
type ListApplicationsFilter struct {
	UserID string // empty = no scoping (admin)
	Status string // optional
	JobID  string // optional
	Page   int    // 1-based
	Limit  int
}

// ApplicationRepository defines persistence operations for applications.
// Reads are joined with job and applicant summaries at query time.
type ApplicationRepository interface {
	// Create inserts a new application. The store's unique (job, user) index
	// makes the one-application-per-job-per-user invariant atomic.
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindDetailByID(ctx context.Context, id string) (*domain.ApplicationDetail, error)
	// List returns a page of applications matching filter, sorted by applied
	// date descending, and the total count.
	List(ctx context.Context, filter ListApplicationsFilter) ([]*domain.ApplicationDetail, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, notes string) (*domain.Application, error)
}
