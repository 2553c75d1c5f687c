package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// ListJobsFilter carries the query parameters for listing jobs.
// RecruiterID is enforced by the service layer for recruiter callers so they
// only see their own postings.
type ListJobsFilter struct {
	RecruiterID int64  // 0 = no owner filter (applicants see all)
	CompanyName string // optional: case-insensitive partial match
	Title       string // optional: case-insensitive partial match
	Limit       int    // 0 = no limit
}

// JobPatch is the typed partial-update structure for a job. Nil means
// "leave unchanged".
type JobPatch struct {
	Title        *string
	CompanyName  *string
	Description  *string
	Requirements *string
	SalaryRange  *string
	JobLink      *string
}

// Empty reports whether the patch changes nothing.
func (p JobPatch) Empty() bool {
	return p.Title == nil && p.CompanyName == nil && p.Description == nil &&
		p.Requirements == nil && p.SalaryRange == nil && p.JobLink == nil
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
	Update(ctx context.Context, id int64, patch JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
	// ListApplicants returns the profile of every user who applied to the job,
	// including whether they have an uploaded resume.
	ListApplicants(ctx context.Context, jobID int64) ([]*Applicant, error)
}

// Applicant is the recruiter-facing view of a user who applied to a job.
type Applicant struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Education string `json:"education,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
	HasResume bool   `json:"has_resume"`
}
