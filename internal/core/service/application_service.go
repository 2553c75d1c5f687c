package service

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ApplicationService implements application tracking use cases.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
}

func NewApplicationService(applications ports.ApplicationRepository, jobs ports.JobRepository) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

var _ ports.ApplicationService = (*ApplicationService)(nil)

func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	return s.applications.ListByUser(ctx, userID)
}

func (s *ApplicationService) Create(ctx context.Context, caller ports.Identity, input ports.CreateApplicationInput) (*domain.Application, error) {
	if input.JobID > 0 {
		return s.applyToJob(ctx, caller.UserID, input.JobID)
	}

	// External/custom job tracked by hand.
	if input.Title == "" || input.CompanyName == "" {
		return nil, domain.Invalid("Missing required fields for custom job")
	}
	return s.applications.Create(ctx, &domain.Application{
		UserID:      caller.UserID,
		Title:       input.Title,
		CompanyName: input.CompanyName,
		JobLink:     input.JobLink,
		Status:      domain.StatusApplied,
	})
}

// applyToJob snapshots the job's title, company and link into the
// application so later job edits don't rewrite the applicant's history.
func (s *ApplicationService) applyToJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.Invalid("Job not found")
		}
		return nil, err
	}

	if _, err := s.applications.FindByUserAndJob(ctx, userID, job.ID); err == nil {
		return nil, domain.Conflict("You have already applied for this job.")
	} else if !isNotFound(err) {
		return nil, err
	}

	return s.applications.Create(ctx, &domain.Application{
		UserID:      userID,
		JobID:       &job.ID,
		Title:       job.Title,
		CompanyName: job.CompanyName,
		JobLink:     job.JobLink,
		Status:      domain.StatusApplied,
	})
}

func (s *ApplicationService) Get(ctx context.Context, caller ports.Identity, id int64) (*domain.Application, error) {
	return s.requireOwned(ctx, caller, id, "view")
}

func (s *ApplicationService) Update(ctx context.Context, caller ports.Identity, id int64, patch ports.ApplicationPatch) (*domain.Application, error) {
	if patch.Empty() {
		return nil, domain.Invalid("No valid fields provided for update")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.Invalid("Invalid application status")
	}
	if _, err := s.requireOwned(ctx, caller, id, "update"); err != nil {
		return nil, err
	}
	return s.applications.Update(ctx, id, patch)
}

func (s *ApplicationService) Delete(ctx context.Context, caller ports.Identity, id int64) error {
	if _, err := s.requireOwned(ctx, caller, id, "delete"); err != nil {
		return err
	}
	return s.applications.Delete(ctx, id)
}

func (s *ApplicationService) requireOwned(ctx context.Context, caller ports.Identity, id int64, action string) (*domain.Application, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != caller.UserID {
		return nil, domain.Unauthorized("You are not authorized to " + action + " this application")
	}
	return app, nil
}
