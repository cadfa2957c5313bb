package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ViewCounter abstracts the per-job popularity counter (Redis).
type ViewCounter interface {
	Hit(ctx context.Context, jobID string) (int64, error)
}

type JobService struct {
	repo   ports.JobRepository
	views  ViewCounter
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, views ViewCounter, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, views: views, logger: logger}
}

// List returns a page of active jobs matching the given filters.
func (s *JobService) List(ctx context.Context, input ports.ListJobsInput) (*ports.ListJobsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListJobsFilter{
		Department:   input.Department,
		Location:     input.Location,
		Type:         input.Type,
		Level:        input.Level,
		Search:       input.Search,
		FeaturedOnly: input.Featured,
		Page:         page,
		Limit:        limit,
	}

	jobs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return &ports.ListJobsResult{
		Items:      jobs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get retrieves a single job and bumps its view counter. Counter failures are
// logged but never fail the read.
func (s *JobService) Get(ctx context.Context, id string) (*ports.JobDetail, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var views int64
	if s.views != nil {
		if views, err = s.views.Hit(ctx, job.ID); err != nil {
			s.logger.Warn().Err(err).Str("job_id", job.ID).Msg("view counter unavailable")
			views = 0
		}
	}

	return &ports.JobDetail{Job: job, Views: views}, nil
}

// Create validates and publishes a new job posting.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if err := validateJobInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	job := &domain.Job{
		Title:               strings.TrimSpace(input.Title),
		Department:          input.Department,
		Location:            strings.TrimSpace(input.Location),
		Type:                domain.JobType(input.Type),
		Level:               domain.JobLevel(input.Level),
		Description:         input.Description,
		Requirements:        input.Requirements,
		Responsibilities:    input.Responsibilities,
		Benefits:            input.Benefits,
		Skills:              input.Skills,
		Salary:              toSalary(input.Salary),
		IsActive:            active,
		Featured:            input.Featured,
		PostedDate:          now,
		ApplicationDeadline: input.ApplicationDeadline,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("title", created.Title).Msg("job created")
	return created, nil
}

// Update applies a partial update and refreshes the update timestamp.
func (s *JobService) Update(ctx context.Context, id string, upd ports.JobUpdate) (*domain.Job, error) {
	if err := validateJobUpdate(upd); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a job permanently. Applications keep their dangling job
// reference; the application read-time join tolerates a missing job.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

func validateJobInput(in ports.CreateJobInput) error {
	var problems []string
	if strings.TrimSpace(in.Title) == "" {
		problems = append(problems, "title is required")
	}
	if in.Department == "" {
		problems = append(problems, "department is required")
	} else if !domain.ValidDepartment(in.Department) {
		problems = append(problems, "department must be a valid department")
	}
	if strings.TrimSpace(in.Location) == "" {
		problems = append(problems, "location is required")
	}
	if in.Type == "" {
		problems = append(problems, "type is required")
	} else if !domain.ValidJobType(in.Type) {
		problems = append(problems, "type must be a valid employment type")
	}
	if in.Level == "" {
		problems = append(problems, "level is required")
	} else if !domain.ValidJobLevel(in.Level) {
		problems = append(problems, "level must be a valid job level")
	}
	if in.Description == "" {
		problems = append(problems, "description is required")
	} else if len(in.Description) < domain.MinDescriptionLen {
		problems = append(problems, fmt.Sprintf("description must be at least %d characters", domain.MinDescriptionLen))
	}
	if len(in.Requirements) == 0 {
		problems = append(problems, "requirements are required")
	}
	if len(in.Responsibilities) == 0 {
		problems = append(problems, "responsibilities are required")
	}
	if len(in.Skills) == 0 {
		problems = append(problems, "skills are required")
	}
	if in.Salary != nil && in.Salary.Min > in.Salary.Max {
		problems = append(problems, "salary min cannot exceed max")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func validateJobUpdate(upd ports.JobUpdate) error {
	var problems []string
	if upd.Department != nil && !domain.ValidDepartment(*upd.Department) {
		problems = append(problems, "department must be a valid department")
	}
	if upd.Type != nil && !domain.ValidJobType(*upd.Type) {
		problems = append(problems, "type must be a valid employment type")
	}
	if upd.Level != nil && !domain.ValidJobLevel(*upd.Level) {
		problems = append(problems, "level must be a valid job level")
	}
	if upd.Description != nil && len(*upd.Description) < domain.MinDescriptionLen {
		problems = append(problems, fmt.Sprintf("description must be at least %d characters", domain.MinDescriptionLen))
	}
	if upd.Salary != nil && upd.Salary.Min > upd.Salary.Max {
		problems = append(problems, "salary min cannot exceed max")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func toSalary(in *ports.SalaryInput) *domain.Salary {
	if in == nil {
		return nil
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return &domain.Salary{Min: in.Min, Max: in.Max, Currency: currency}
}

// normalizePage applies the 1-based page default and the limit default/cap.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// totalPages computes ceil(total/limit).
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
