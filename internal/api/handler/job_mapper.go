package handler

import (
	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateJobInput(req createJobRequest) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:               req.Title,
		Department:          req.Department,
		Location:            req.Location,
		Type:                req.Type,
		Level:               req.Level,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		Skills:              req.Skills,
		Salary:              toSalaryInput(req.Salary),
		Featured:            req.Featured,
		IsActive:            req.IsActive,
		ApplicationDeadline: req.ApplicationDeadline,
	}
}

func toJobUpdate(req updateJobRequest) ports.JobUpdate {
	upd := ports.JobUpdate{
		Title:               req.Title,
		Department:          req.Department,
		Location:            req.Location,
		Type:                req.Type,
		Level:               req.Level,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		Skills:              req.Skills,
		IsActive:            req.IsActive,
		Featured:            req.Featured,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if req.Salary != nil {
		currency := req.Salary.Currency
		if currency == "" {
			currency = "USD"
		}
		upd.Salary = &domain.Salary{Min: req.Salary.Min, Max: req.Salary.Max, Currency: currency}
	}
	return upd
}

func toSalaryInput(s *salaryRequest) *ports.SalaryInput {
	if s == nil {
		return nil
	}
	return &ports.SalaryInput{Min: s.Min, Max: s.Max, Currency: s.Currency}
}

// --- Service result → HTTP response ---

func toListJobsResponse(r *ports.ListJobsResult) listJobsResponse {
	jobs := r.Items
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return listJobsResponse{
		Jobs: jobs,
		Pagination: paginationResponse{
			Page:  r.Page,
			Limit: r.Limit,
			Total: r.Total,
			Pages: r.TotalPages,
		},
	}
}
