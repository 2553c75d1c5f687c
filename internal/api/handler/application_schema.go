package handler

import (
	"time"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// createApplicationRequest applies to a posted job when jobId is set, or
// records an external/custom job when it is absent.
type createApplicationRequest struct {
	JobID       int64  `json:"jobId"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	JobLink     string `json:"jobLink"`
}

// updateApplicationRequest is the declared allow-list for application
// updates. Unknown fields are rejected at bind time.
type updateApplicationRequest struct {
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	Title       *string `json:"title"`
	CompanyName *string `json:"companyName"`
	JobLink     *string `json:"jobLink"`
}

type applicationResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	JobID       *int64    `json:"job_id,omitempty"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	JobLink     string    `json:"job_link,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		JobID:       a.JobID,
		Title:       a.Title,
		CompanyName: a.CompanyName,
		JobLink:     a.JobLink,
		Status:      string(a.Status),
		Notes:       a.Notes,
		AppliedAt:   a.AppliedAt.UTC(),
	}
}

func toApplicationListResponse(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	return out
}
