package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// CreateJobInput carries the data for a new job posting.
type CreateJobInput struct {
	Title        string
	CompanyName  string
	Description  string
	Requirements string
	SalaryRange  string
	JobLink      string
}

// ListJobsInput carries the query parameters of the job list endpoint.
type ListJobsInput struct {
	CompanyName string
	Title       string
	Limit       int
}

// JobService defines use-case operations for jobs.
type JobService interface {
	// List returns jobs visible to the caller: recruiters see only their own
	// postings, applicants see all.
	List(ctx context.Context, caller Identity, input ListJobsInput) ([]*domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	Create(ctx context.Context, caller Identity, input CreateJobInput) (*domain.Job, error)
	// Update applies the patch; only the posting recruiter may modify a job.
	Update(ctx context.Context, caller Identity, jobID int64, patch JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, caller Identity, jobID int64) error
	// ListApplicants returns the applicants to one of the caller's jobs.
	ListApplicants(ctx context.Context, caller Identity, jobID int64) ([]*Applicant, error)
}
