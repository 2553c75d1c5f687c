package service

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// JobService implements job posting use cases.
type JobService struct {
	jobs ports.JobRepository
}

func NewJobService(jobs ports.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

var _ ports.JobService = (*JobService)(nil)

func (s *JobService) List(ctx context.Context, caller ports.Identity, input ports.ListJobsInput) ([]*domain.Job, error) {
	filter := ports.ListJobsFilter{
		CompanyName: input.CompanyName,
		Title:       input.Title,
		Limit:       input.Limit,
	}
	// Recruiters only see their own postings.
	if caller.Role == domain.RoleRecruiter {
		filter.RecruiterID = caller.UserID
	}
	return s.jobs.List(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, caller ports.Identity, input ports.CreateJobInput) (*domain.Job, error) {
	return s.jobs.Create(ctx, &domain.Job{
		RecruiterID:  caller.UserID,
		Title:        input.Title,
		CompanyName:  input.CompanyName,
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		JobLink:      input.JobLink,
	})
}

func (s *JobService) Update(ctx context.Context, caller ports.Identity, jobID int64, patch ports.JobPatch) (*domain.Job, error) {
	if patch.Empty() {
		return nil, domain.Invalid("No valid fields provided for update")
	}
	if err := s.requireOwner(ctx, caller, jobID, "modify"); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, jobID, patch)
}

func (s *JobService) Delete(ctx context.Context, caller ports.Identity, jobID int64) error {
	if err := s.requireOwner(ctx, caller, jobID, "delete"); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}

func (s *JobService) ListApplicants(ctx context.Context, caller ports.Identity, jobID int64) ([]*ports.Applicant, error) {
	if err := s.requireOwner(ctx, caller, jobID, "view applicants for"); err != nil {
		return nil, err
	}
	return s.jobs.ListApplicants(ctx, jobID)
}

// requireOwner loads the job and checks the caller posted it.
func (s *JobService) requireOwner(ctx context.Context, caller ports.Identity, jobID int64, action string) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.RecruiterID != caller.UserID {
		return domain.Unauthorized("You are not authorized to " + action + " this job")
	}
	return nil
}
