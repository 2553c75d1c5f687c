package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/api/metrics"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ResumeHandler handles resume upload and retrieval.
type ResumeHandler struct {
	service ports.ResumeService
}

func NewResumeHandler(service ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Upload handles POST /resumes (applicants only). The file is read from the
// "resume" multipart field; only PDFs are accepted. A new upload replaces the
// caller's previous resume and its stored object.
//
// @Summary      Upload a resume
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "PDF resume"
// @Success      201     {object}  resumeEnvelope
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /resumes [post]
func (h *ResumeHandler) Upload(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return domain.Invalid("Resume file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.Internal("failed to read uploaded file", err)
	}
	defer file.Close()

	start := time.Now()
	resume, err := h.service.Upload(c.Request().Context(), identity, ports.UploadResumeInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return err
	}
	metrics.ResumeUploadDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusCreated, resumeEnvelope{
		Message: "Resume uploaded successfully",
		Resume:  toResumeResponse(resume),
	})
}

// Get handles GET /resumes. Applicants get their own resume; recruiters get
// the applicant resumes for one of their jobs, selected by the jobId query
// parameter.
//
// @Summary      Get resume(s)
// @Tags         resumes
// @Produce      json
// @Param        jobId  query     int  false  "Job ID (recruiters only)"
// @Success      200    {object}  resumeResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /resumes [get]
func (h *ResumeHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if identity.Role == domain.RoleRecruiter {
		raw := c.QueryParam("jobId")
		jobID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || jobID < 1 {
			return domain.Invalid("Invalid job ID")
		}

		resumes, err := h.service.ListByJob(c.Request().Context(), identity, jobID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, resumes)
	}

	resume, err := h.service.GetOwn(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	if resume == nil {
		return domain.NotFound("No resume found")
	}
	return c.JSON(http.StatusOK, toResumeResponse(resume))
}

// Feedback handles GET /resumes/feedback: the caller's stored AI feedback,
// or null when no resume has been uploaded.
//
// @Summary      Get resume feedback
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  feedbackResponse
// @Failure      401  {object}  errorResponse
// @Router       /resumes/feedback [get]
func (h *ResumeHandler) Feedback(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	feedback, err := h.service.Feedback(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	resp := feedbackResponse{}
	if feedback != "" {
		resp.Feedback = &feedback
	}
	return c.JSON(http.StatusOK, resp)
}
