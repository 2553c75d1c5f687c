package service

import (
	"context"
	"testing"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

type stubApplicationRepo struct {
	createFn           func(ctx context.Context, app *domain.Application) (*domain.Application, error)
	findByIDFn         func(ctx context.Context, id int64) (*domain.Application, error)
	findByUserAndJobFn func(ctx context.Context, userID, jobID int64) (*domain.Application, error)
	listByUserFn       func(ctx context.Context, userID int64) ([]*domain.Application, error)
	updateFn           func(ctx context.Context, id int64, patch ports.ApplicationPatch) (*domain.Application, error)
	deleteFn           func(ctx context.Context, id int64) error
}

func (s *stubApplicationRepo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	return s.createFn(ctx, app)
}

func (s *stubApplicationRepo) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubApplicationRepo) FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	return s.findByUserAndJobFn(ctx, userID, jobID)
}

func (s *stubApplicationRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubApplicationRepo) Update(ctx context.Context, id int64, patch ports.ApplicationPatch) (*domain.Application, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubApplicationRepo) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func passthroughCreate(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	created := *app
	created.ID = 100
	return &created, nil
}

func TestApplicationService_Create_SnapshotsJob(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return &domain.Job{
				ID:          id,
				RecruiterID: 1,
				Title:       "Backend Engineer",
				CompanyName: "Acme",
				JobLink:     "https://acme.example/jobs/3",
			}, nil
		},
	}
	apps := &stubApplicationRepo{
		findByUserAndJobFn: func(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
			return nil, domain.NotFound("Application not found")
		},
		createFn: passthroughCreate,
	}
	svc := NewApplicationService(apps, jobs)

	app, err := svc.Create(context.Background(), applicantOne, ports.CreateApplicationInput{JobID: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.JobID == nil || *app.JobID != 3 {
		t.Fatalf("expected job id 3, got %v", app.JobID)
	}
	if app.Title != "Backend Engineer" || app.CompanyName != "Acme" {
		t.Fatalf("expected job snapshot, got %+v", app)
	}
	if app.Status != domain.StatusApplied {
		t.Fatalf("expected status APPLIED, got %s", app.Status)
	}
}

func TestApplicationService_Create_JobMissing(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return nil, domain.NotFound("Job not found")
		},
	}
	svc := NewApplicationService(&stubApplicationRepo{}, jobs)

	_, err := svc.Create(context.Background(), applicantOne, ports.CreateApplicationInput{JobID: 99})
	de := requireKind(t, err, domain.KindInvalid)
	if de.Message != "Job not found" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestApplicationService_Create_DoubleApply(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Job, error) {
			return &domain.Job{ID: id, Title: "Backend Engineer", CompanyName: "Acme"}, nil
		},
	}
	apps := &stubApplicationRepo{
		findByUserAndJobFn: func(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
			return &domain.Application{ID: 1, UserID: userID}, nil
		},
	}
	svc := NewApplicationService(apps, jobs)

	_, err := svc.Create(context.Background(), applicantOne, ports.CreateApplicationInput{JobID: 3})
	de := requireKind(t, err, domain.KindConflict)
	if de.Message != "You have already applied for this job." {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestApplicationService_Create_CustomJob(t *testing.T) {
	apps := &stubApplicationRepo{createFn: passthroughCreate}
	svc := NewApplicationService(apps, &stubJobRepo{})

	app, err := svc.Create(context.Background(), applicantOne, ports.CreateApplicationInput{
		Title:       "Platform Engineer",
		CompanyName: "Initech",
		JobLink:     "https://initech.example/careers",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.JobID != nil {
		t.Fatalf("custom application must not reference a job, got %v", *app.JobID)
	}
}

func TestApplicationService_Create_CustomJobMissingFields(t *testing.T) {
	svc := NewApplicationService(&stubApplicationRepo{}, &stubJobRepo{})

	_, err := svc.Create(context.Background(), applicantOne, ports.CreateApplicationInput{
		Title: "Platform Engineer", // no company name
	})
	requireKind(t, err, domain.KindInvalid)
}

func TestApplicationService_Update_StatusValidation(t *testing.T) {
	svc := NewApplicationService(&stubApplicationRepo{}, &stubJobRepo{})

	bogus := domain.ApplicationStatus("GHOSTED")
	_, err := svc.Update(context.Background(), applicantOne, 1, ports.ApplicationPatch{Status: &bogus})
	de := requireKind(t, err, domain.KindInvalid)
	if de.Message != "Invalid application status" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestApplicationService_Update_OwnerOnly(t *testing.T) {
	apps := &stubApplicationRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Application, error) {
			return &domain.Application{ID: id, UserID: 999}, nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{})

	status := domain.StatusInterview
	_, err := svc.Update(context.Background(), applicantOne, 1, ports.ApplicationPatch{Status: &status})
	requireKind(t, err, domain.KindUnauthorized)
}

func TestApplicationService_Update_AppliesPatch(t *testing.T) {
	apps := &stubApplicationRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Application, error) {
			return &domain.Application{ID: id, UserID: applicantOne.UserID, Status: domain.StatusApplied}, nil
		},
		updateFn: func(ctx context.Context, id int64, patch ports.ApplicationPatch) (*domain.Application, error) {
			return &domain.Application{ID: id, UserID: applicantOne.UserID, Status: *patch.Status}, nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{})

	status := domain.StatusOffer
	app, err := svc.Update(context.Background(), applicantOne, 1, ports.ApplicationPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if app.Status != domain.StatusOffer {
		t.Fatalf("expected OFFER, got %s", app.Status)
	}
}

func TestApplicationService_Delete_OwnerOnly(t *testing.T) {
	apps := &stubApplicationRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Application, error) {
			return &domain.Application{ID: id, UserID: 999}, nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{})

	err := svc.Delete(context.Background(), applicantOne, 1)
	requireKind(t, err, domain.KindUnauthorized)
}
