package handler

import (
	"time"

	"github.com/careerhub/job-board-api/internal/core/domain"
)

type salaryRequest struct {
	Min      int    `json:"min"      validate:"gte=0"`
	Max      int    `json:"max"      validate:"gtefield=Min"`
	Currency string `json:"currency"`
}

type createJobRequest struct {
	Title               string         `json:"title"                validate:"required,max=100"`
	Department          string         `json:"department"           validate:"required,department"`
	Location            string         `json:"location"             validate:"required"`
	Type                string         `json:"type"                 validate:"required,oneof=Full-time Part-time Contract Internship"`
	Level               string         `json:"level"                validate:"required,oneof=Entry Mid Senior Lead"`
	Description         string         `json:"description"          validate:"required,min=50"`
	Requirements        []string       `json:"requirements"         validate:"required,min=1,dive,required"`
	Responsibilities    []string       `json:"responsibilities"     validate:"required,min=1,dive,required"`
	Benefits            []string       `json:"benefits"`
	Skills              []string       `json:"skills"               validate:"required,min=1,dive,required"`
	Salary              *salaryRequest `json:"salary"`
	Featured            bool           `json:"featured"`
	IsActive            *bool          `json:"is_active"`
	ApplicationDeadline *time.Time     `json:"application_deadline"`
}

// updateJobRequest is a partial update; absent fields stay untouched.
type updateJobRequest struct {
	Title               *string        `json:"title"                validate:"omitempty,max=100"`
	Department          *string        `json:"department"           validate:"omitempty,department"`
	Location            *string        `json:"location"`
	Type                *string        `json:"type"                 validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Level               *string        `json:"level"                validate:"omitempty,oneof=Entry Mid Senior Lead"`
	Description         *string        `json:"description"          validate:"omitempty,min=50"`
	Requirements        []string       `json:"requirements"`
	Responsibilities    []string       `json:"responsibilities"`
	Benefits            []string       `json:"benefits"`
	Skills              []string       `json:"skills"`
	Salary              *salaryRequest `json:"salary"`
	IsActive            *bool          `json:"is_active"`
	Featured            *bool          `json:"featured"`
	ApplicationDeadline *time.Time     `json:"application_deadline"`
}

// jobDetailResponse is the single-job view, including the popularity counter.
type jobDetailResponse struct {
	Job   *domain.Job `json:"job"`
	Views int64       `json:"views"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listJobsResponse struct {
	Jobs       []*domain.Job      `json:"jobs"`
	Pagination paginationResponse `json:"pagination"`
}
