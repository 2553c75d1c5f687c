package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /jobs. Recruiters see their own postings, applicants all.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        company_name  query     string  false  "Filter by company name (partial match)"
// @Param        title         query     string  false  "Filter by title (partial match)"
// @Param        limit         query     int     false  "Maximum number of jobs"
// @Success      200           {array}   jobResponse
// @Failure      401           {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return domain.Invalid("Invalid limit")
		}
	}

	jobs, err := h.service.List(c.Request().Context(), identity, ports.ListJobsInput{
		CompanyName: c.QueryParam("company_name"),
		Title:       c.QueryParam("title"),
		Limit:       limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "Invalid job ID")
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /jobs (recruiters only).
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      200   {object}  jobEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Invalid(err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), identity, ports.CreateJobInput{
		Title:        req.Title,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		JobLink:      req.JobLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobEnvelope{Message: "Job posted successfully", Job: toJobResponse(job)})
}

// Update handles PUT /jobs/:id (posting recruiter only).
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  jobEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid job ID")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	job, err := h.service.Update(c.Request().Context(), identity, id, ports.JobPatch{
		Title:        req.Title,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		JobLink:      req.JobLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobEnvelope{Message: "Job updated successfully", Job: toJobResponse(job)})
}

// Delete handles DELETE /jobs/:id (posting recruiter only).
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid job ID")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}

// ListApplicants handles GET /jobs/:id/applicants (posting recruiter only).
//
// @Summary      List applicants for a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {array}   ports.Applicant
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id}/applicants [get]
func (h *JobHandler) ListApplicants(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "Invalid job ID")
	if err != nil {
		return err
	}

	applicants, err := h.service.ListApplicants(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicants)
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context, invalidMsg string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Invalid(invalidMsg)
	}
	return id, nil
}
