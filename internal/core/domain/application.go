package domain

import "time"

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application tracks one user's pursuit of a job. JobID is nil for
// external/custom jobs the applicant tracks by hand; title and company are
// snapshotted at apply time so later job edits don't rewrite history.
type Application struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	JobID       *int64            `json:"job_id,omitempty"`
	Title       string            `json:"title"`
	CompanyName string            `json:"company_name"`
	JobLink     string            `json:"job_link,omitempty"`
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	AppliedAt   time.Time         `json:"applied_at"`
}
