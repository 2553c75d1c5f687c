package service

import (
	"context"
	"testing"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

type stubJobRepo struct {
	createFn         func(ctx context.Context, job *domain.Job) (*domain.Job, error)
	findByIDFn       func(ctx context.Context, id int64) (*domain.Job, error)
	listFn           func(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error)
	updateFn         func(ctx context.Context, id int64, patch ports.JobPatch) (*domain.Job, error)
	deleteFn         func(ctx context.Context, id int64) error
	listApplicantsFn func(ctx context.Context, jobID int64) ([]*ports.Applicant, error)
}

func (s *stubJobRepo) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	return s.createFn(ctx, job)
}

func (s *stubJobRepo) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubJobRepo) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	return s.listFn(ctx, filter)
}

func (s *stubJobRepo) Update(ctx context.Context, id int64, patch ports.JobPatch) (*domain.Job, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubJobRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubJobRepo) ListApplicants(ctx context.Context, jobID int64) ([]*ports.Applicant, error) {
	return s.listApplicantsFn(ctx, jobID)
}

var (
	recruiterOne = ports.Identity{UserID: 1, Role: domain.RoleRecruiter}
	recruiterTwo = ports.Identity{UserID: 2, Role: domain.RoleRecruiter}
	applicantOne = ports.Identity{UserID: 10, Role: domain.RoleApplicant}
)

func TestJobService_List_RecruiterSeesOwnOnly(t *testing.T) {
	jobs := &stubJobRepo{
		listFn: func(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
			if filter.RecruiterID != recruiterOne.UserID {
				t.Fatalf("expected owner filter %d, got %d", recruiterOne.UserID, filter.RecruiterID)
			}
			return []*domain.Job{{ID: 1, RecruiterID: recruiterOne.UserID}}, nil
		},
	}
	svc := NewJobService(jobs)

	out, err := svc.List(context.Background(), recruiterOne, ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 job, got %d", len(out))
	}
}

func TestJobService_List_ApplicantSeesAll(t *testing.T) {
	jobs := &stubJobRepo{
		listFn: func(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
			if filter.RecruiterID != 0 {
				t.Fatalf("applicant listing must not carry an owner filter, got %d", filter.RecruiterID)
			}
			return nil, nil
		},
	}
	svc := NewJobService(jobs)

	if _, err := svc.List(context.Background(), applicantOne, ports.ListJobsInput{Limit: 5}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestJobService_Create_SetsOwner(t *testing.T) {
	jobs := &stubJobRepo{
		createFn: func(ctx context.Context, job *domain.Job) (*domain.Job, error) {
			if job.RecruiterID != recruiterOne.UserID {
				t.Fatalf("expected recruiter %d, got %d", recruiterOne.UserID, job.RecruiterID)
			}
			created := *job
			created.ID = 42
			return &created, nil
		},
	}
	svc := NewJobService(jobs)

	job, err := svc.Create(context.Background(), recruiterOne, ports.CreateJobInput{
		Title:       "Backend Engineer",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.ID != 42 {
		t.Fatalf("expected id 42, got %d", job.ID)
	}
}

func TestJobService_Update_NonOwnerRejected(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return &domain.Job{ID: id, RecruiterID: recruiterOne.UserID}, nil
		},
		updateFn: func(ctx context.Context, id int64, patch ports.JobPatch) (*domain.Job, error) {
			t.Fatalf("update must not be reached")
			return nil, nil
		},
	}
	svc := NewJobService(jobs)

	title := "New title"
	_, err := svc.Update(context.Background(), recruiterTwo, 5, ports.JobPatch{Title: &title})
	de := requireKind(t, err, domain.KindUnauthorized)
	if de.Message != "You are not authorized to modify this job" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestJobService_Update_EmptyPatch(t *testing.T) {
	svc := NewJobService(&stubJobRepo{})

	_, err := svc.Update(context.Background(), recruiterOne, 5, ports.JobPatch{})
	requireKind(t, err, domain.KindInvalid)
}

func TestJobService_Delete_Owner(t *testing.T) {
	deleted := false
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return &domain.Job{ID: id, RecruiterID: recruiterOne.UserID}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewJobService(jobs)

	if err := svc.Delete(context.Background(), recruiterOne, 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("expected repository delete")
	}
}

func TestJobService_Delete_MissingJob(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return nil, domain.NotFound("Job not found")
		},
	}
	svc := NewJobService(jobs)

	err := svc.Delete(context.Background(), recruiterOne, 99)
	requireKind(t, err, domain.KindNotFound)
}

func TestJobService_ListApplicants_OwnerOnly(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return &domain.Job{ID: id, RecruiterID: recruiterOne.UserID}, nil
		},
		listApplicantsFn: func(ctx context.Context, jobID int64) ([]*ports.Applicant, error) {
			return []*ports.Applicant{{ID: 10, Name: "Alice", HasResume: true}}, nil
		},
	}
	svc := NewJobService(jobs)

	applicants, err := svc.ListApplicants(context.Background(), recruiterOne, 5)
	if err != nil {
		t.Fatalf("list applicants: %v", err)
	}
	if len(applicants) != 1 || !applicants[0].HasResume {
		t.Fatalf("unexpected applicants: %+v", applicants)
	}

	_, err = svc.ListApplicants(context.Background(), recruiterTwo, 5)
	requireKind(t, err, domain.KindUnauthorized)
}
