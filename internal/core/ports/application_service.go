package ports

import (
	"context"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

// Caller is the identity derived from a verified session token.
type Caller struct {
	UserID string
	Email  string
	Role   string
}

// Elevated reports whether the caller may see other users' applications.
func (c Caller) Elevated() bool {
	return c.Role == domain.RoleAdmin
}

// ListApplicationsInput carries all parameters for the applications listing.
type ListApplicationsInput struct {
	Caller Caller
	Status string
	JobID  string
	Page   int
	Limit  int
}

// ListApplicationsResult is returned by List.
type ListApplicationsResult struct {
	Items      []*domain.ApplicationDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ApplyInput carries the data needed to submit an application.
type ApplyInput struct {
	Caller         Caller
	JobID          string
	CoverLetter    string
	Resume         string
	AdditionalInfo string
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	List(ctx context.Context, input ListApplicationsInput) (*ListApplicationsResult, error)
	Apply(ctx context.Context, input ApplyInput) (*domain.ApplicationDetail, error)
	// UpdateStatus drives the admin review state machine.
	UpdateStatus(ctx context.Context, id, status, notes string) (*domain.Application, error)
}
