package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careerhub/job-board-api/internal/api/metrics"
	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// List handles GET /applications. Non-admin callers only ever see their own
// applications; the scoping happens in the service, not here.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        limit   query  int     false  "Page size (default 10, max 100)"
// @Param        status  query  string  false  "Status filter"
// @Param        jobId   query  string  false  "Job id filter"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListApplicationsInput{
		Caller: caller,
		Status: c.QueryParam("status"),
		JobID:  c.QueryParam("jobId"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	items := result.Items
	if items == nil {
		items = []*domain.ApplicationDetail{}
	}

	return respond(c, http.StatusOK, listApplicationsResponse{
		Applications: items,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	})
}

// Apply handles POST /applications.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		Caller:         caller,
		JobID:          req.JobID,
		CoverLetter:    req.CoverLetter,
		Resume:         req.Resume,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsSubmittedTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.ApplicationsSubmittedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, detail)
}

// UpdateStatus handles PATCH /applications/:id/status (admin only). It drives
// the review state machine; invalid transitions are rejected.
//
// @Summary      Update an application's review status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, app)
}
