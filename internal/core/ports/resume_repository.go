package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// ResumeRepository defines persistence operations for resumes.
type ResumeRepository interface {
	Create(ctx context.Context, resume *domain.Resume) (*domain.Resume, error)
	// FindByUser returns the user's resume, or a NotFound error.
	FindByUser(ctx context.Context, userID int64) (*domain.Resume, error)
	Delete(ctx context.Context, id int64) error
	// ListByJob returns, for each applicant to the job, their name, email and
	// resume URL (empty when they have none).
	ListByJob(ctx context.Context, jobID int64) ([]*ApplicantResume, error)
}

// ApplicantResume is the recruiter-facing view of one applicant's resume.
type ApplicantResume struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ResumeURL string `json:"resume_url,omitempty"`
}
