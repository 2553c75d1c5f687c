package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/storage"
)

// ResumeService implements resume upload, replacement and AI feedback.
type ResumeService struct {
	resumes  ports.ResumeRepository
	jobs     ports.JobRepository
	objects  ports.ObjectStorage
	reviewer ports.FeedbackEngine
	log      zerolog.Logger
}

func NewResumeService(
	resumes ports.ResumeRepository,
	jobs ports.JobRepository,
	objects ports.ObjectStorage,
	reviewer ports.FeedbackEngine,
	log zerolog.Logger,
) *ResumeService {
	return &ResumeService{resumes: resumes, jobs: jobs, objects: objects, reviewer: reviewer, log: log}
}

var _ ports.ResumeService = (*ResumeService)(nil)

func (s *ResumeService) Upload(ctx context.Context, caller ports.Identity, input ports.UploadResumeInput) (*domain.Resume, error) {
	if input.ContentType != "application/pdf" {
		return nil, domain.Invalid("Only PDF files are allowed")
	}

	// A new upload fully replaces the previous resume. Removing the old
	// object is best-effort: a dangling object is preferable to a failed
	// upload.
	if existing, err := s.resumes.FindByUser(ctx, caller.UserID); err == nil {
		if key := s.objects.KeyFromURL(existing.ResumeURL); key != "" {
			if err := s.objects.Delete(ctx, key); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("failed to delete old resume object")
			}
		}
		if err := s.resumes.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else if !isNotFound(err) {
		return nil, err
	}

	key := storage.ResumeKey(input.FileName)
	url, err := s.objects.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return nil, domain.Internal("resume upload failed", err)
	}

	data, err := s.objects.Fetch(ctx, key)
	if err != nil {
		return nil, domain.Internal("resume fetch failed", err)
	}

	aiFeedback, err := s.reviewer.Review(ctx, data)
	if err != nil {
		return nil, domain.Internal("resume feedback failed", err)
	}

	return s.resumes.Create(ctx, &domain.Resume{
		UserID:     caller.UserID,
		ResumeURL:  url,
		AIFeedback: aiFeedback,
	})
}

// GetOwn returns the caller's resume, or (nil, nil) when none exists.
func (s *ResumeService) GetOwn(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume, err := s.resumes.FindByUser(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) ListByJob(ctx context.Context, caller ports.Identity, jobID int64) ([]*ports.ApplicantResume, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.Unauthorized("You haven't posted any jobs yet")
		}
		return nil, err
	}
	if job.RecruiterID != caller.UserID {
		return nil, domain.Unauthorized("You haven't posted any jobs yet")
	}
	return s.resumes.ListByJob(ctx, jobID)
}

func (s *ResumeService) Feedback(ctx context.Context, userID int64) (string, error) {
	resume, err := s.GetOwn(ctx, userID)
	if err != nil || resume == nil {
		return "", err
	}
	return resume.AIFeedback, nil
}
