package handler

import (
	"time"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

type createJobRequest struct {
	Title        string `json:"title"        validate:"required"`
	CompanyName  string `json:"companyName"  validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	SalaryRange  string `json:"salaryRange"`
	JobLink      string `json:"jobLink"`
}

// updateJobRequest is the declared allow-list for job updates. Unknown
// fields are rejected at bind time; nil fields are left unchanged.
type updateJobRequest struct {
	Title        *string `json:"title"`
	CompanyName  *string `json:"companyName"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	SalaryRange  *string `json:"salaryRange"`
	JobLink      *string `json:"jobLink"`
}

type jobResponse struct {
	ID           int64     `json:"id"`
	RecruiterID  int64     `json:"recruiter_id"`
	Title        string    `json:"title"`
	CompanyName  string    `json:"company_name"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	JobLink      string    `json:"job_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type jobEnvelope struct {
	Message string      `json:"message"`
	Job     jobResponse `json:"job"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:           j.ID,
		RecruiterID:  j.RecruiterID,
		Title:        j.Title,
		CompanyName:  j.CompanyName,
		Description:  j.Description,
		Requirements: j.Requirements,
		SalaryRange:  j.SalaryRange,
		JobLink:      j.JobLink,
		CreatedAt:    j.CreatedAt.UTC(),
	}
}

func toJobListResponse(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out
}
