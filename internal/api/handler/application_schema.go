package handler

import "github.com/careerhub/job-board-api/internal/core/domain"

type applyRequest struct {
	JobID          string `json:"jobId"          validate:"required"`
	CoverLetter    string `json:"coverLetter"    validate:"omitempty,max=2000"`
	Resume         string `json:"resume"`
	AdditionalInfo string `json:"additionalInfo" validate:"omitempty,max=1000"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing interview accepted rejected"`
	Notes  string `json:"notes"  validate:"omitempty,max=1000"`
}

type listApplicationsResponse struct {
	Applications []*domain.ApplicationDetail `json:"applications"`
	Pagination   paginationResponse          `json:"pagination"`
}
