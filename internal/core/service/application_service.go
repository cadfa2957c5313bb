package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

const (
	maxCoverLetterLen    = 2000
	maxAdditionalInfoLen = 1000
	maxNotesLen          = 1000
)

type ApplicationService struct {
	repo    ports.ApplicationRepository
	jobRepo ports.JobRepository
	logger  zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, jobRepo ports.JobRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobRepo: jobRepo, logger: logger}
}

// List returns a page of applications. Callers without the admin role are
// always scoped to their own applications, regardless of supplied filters.
func (s *ApplicationService) List(ctx context.Context, input ports.ListApplicationsInput) (*ports.ListApplicationsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListApplicationsFilter{
		Status: input.Status,
		JobID:  input.JobID,
		Page:   page,
		Limit:  limit,
	}
	if !input.Caller.Elevated() {
		filter.UserID = input.Caller.UserID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return &ports.ListApplicationsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Apply submits a new application for the caller. The job must exist and be
// active; a second application to the same job is rejected by the store's
// unique (job, user) index.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.ApplicationDetail, error) {
	if input.JobID == "" {
		return nil, fmt.Errorf("%w: job id is required", domain.ErrValidation)
	}
	if len(input.CoverLetter) > maxCoverLetterLen {
		return nil, fmt.Errorf("%w: cover letter cannot exceed %d characters", domain.ErrValidation, maxCoverLetterLen)
	}
	if len(input.AdditionalInfo) > maxAdditionalInfoLen {
		return nil, fmt.Errorf("%w: additional info cannot exceed %d characters", domain.ErrValidation, maxAdditionalInfoLen)
	}

	job, err := s.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		// Inactive jobs are invisible to applicants.
		return nil, domain.ErrJobNotFound
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:          job.ID,
		UserID:         input.Caller.UserID,
		Status:         domain.StatusPending,
		CoverLetter:    input.CoverLetter,
		Resume:         input.Resume,
		AdditionalInfo: input.AdditionalInfo,
		AppliedDate:    now,
		LastUpdated:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", created.ID).
		Str("job_id", job.ID).
		Str("user_id", input.Caller.UserID).
		Msg("application submitted")

	return s.repo.FindDetailByID(ctx, created.ID)
}

// UpdateStatus advances an application through the review state machine.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status, notes string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, fmt.Errorf("%w: status must be a valid application status", domain.ErrValidation)
	}
	if len(notes) > maxNotesLen {
		return nil, fmt.Errorf("%w: notes cannot exceed %d characters", domain.ErrValidation, maxNotesLen)
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.ApplicationStatus(status)
	if !app.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, app.Status, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next, notes)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", id).
		Str("from", string(app.Status)).
		Str("to", status).
		Msg("application status updated")

	return updated, nil
}
