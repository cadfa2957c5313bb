package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careerhub/job-board-api/internal/api/metrics"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /jobs, the public, filtered, paginated listing.
//
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        page        query  int     false  "Page number (default 1)"
// @Param        limit       query  int     false  "Page size (default 10, max 100)"
// @Param        department  query  string  false  "Department filter"
// @Param        location    query  string  false  "Location substring filter"
// @Param        type        query  string  false  "Employment type filter"
// @Param        level       query  string  false  "Level filter"
// @Param        search      query  string  false  "Free-text search over title, description, skills"
// @Param        featured    query  bool    false  "Only featured jobs"
// @Success      200  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListJobsInput{
		Department: c.QueryParam("department"),
		Location:   c.QueryParam("location"),
		Type:       c.QueryParam("type"),
		Level:      c.QueryParam("level"),
		Search:     c.QueryParam("search"),
		Featured:   c.QueryParam("featured") == "true",
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toListJobsResponse(result))
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.JobViewsTotal.Inc()
	return respond(c, http.StatusOK, jobDetailResponse{Job: detail.Job, Views: detail.Views})
}

// Create handles POST /jobs (admin only).
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), toCreateJobInput(req))
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.Department).Inc()
	return respond(c, http.StatusCreated, job)
}

// Update handles PUT /jobs/:id (admin only). The body is a partial update.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), toJobUpdate(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, job)
}

// Delete handles DELETE /jobs/:id (admin only). Removal is permanent.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, map[string]string{"message": "job deleted successfully"})
}
