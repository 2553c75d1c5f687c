package ports

import (
	"context"
	"io"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// UploadResumeInput carries one uploaded resume file.
type UploadResumeInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// ResumeService defines use-case operations for resumes.
type ResumeService interface {
	// Upload stores the PDF, replaces any previous resume for the user,
	// generates AI feedback and persists the record.
	Upload(ctx context.Context, caller Identity, input UploadResumeInput) (*domain.Resume, error)
	// GetOwn returns the caller's resume, or (nil, nil) when none exists.
	GetOwn(ctx context.Context, userID int64) (*domain.Resume, error)
	// ListByJob returns applicant resumes for one of the caller's jobs.
	ListByJob(ctx context.Context, caller Identity, jobID int64) ([]*ApplicantResume, error)
	// Feedback returns the stored AI feedback, or "" when none exists.
	Feedback(ctx context.Context, userID int64) (string, error)
}
