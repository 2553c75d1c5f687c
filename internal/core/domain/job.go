package domain

import "time"

// Job is a position posted by a recruiter.
type Job struct {
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
