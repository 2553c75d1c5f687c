package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

func TestUserService_Get_IncludesResumeFlag(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Email: "alice@example.com", Role: domain.RoleApplicant}, nil
		},
		hasResumeFn: func(ctx context.Context, userID int64) (bool, error) {
			return true, nil
		},
	}
	svc := NewUserService(users)

	profile, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !profile.HasResume {
		t.Fatalf("expected has_resume true")
	}
	if profile.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", profile.User)
	}
}

func TestUserService_List_ReturnsAllAccounts(t *testing.T) {
	users := &stubUserRepo{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: 2, Email: "bob@example.com", Role: domain.RoleRecruiter},
				{ID: 1, Email: "alice@example.com", Role: domain.RoleApplicant},
			}, nil
		},
	}
	svc := NewUserService(users)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if got[0].Email != "bob@example.com" {
		t.Fatalf("unexpected first user: %+v", got[0])
	}
}

func TestUserService_Update_SelfOnly(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	name := "Mallory"
	_, err := svc.Update(context.Background(), applicantOne, 999, ports.UpdateUserInput{Name: &name})
	de := requireKind(t, err, domain.KindUnauthorized)
	if de.Message != "You are not authorized to update this user" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	users := &stubUserRepo{
		updateFn: func(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
			if patch.PasswordHash == nil {
				t.Fatalf("expected a password hash in the patch")
			}
			if bcrypt.CompareHashAndPassword([]byte(*patch.PasswordHash), []byte("new-password")) != nil {
				t.Fatalf("stored hash does not match the new password")
			}
			return &domain.User{ID: id}, nil
		},
	}
	svc := NewUserService(users)

	password := "new-password"
	_, err := svc.Update(context.Background(), applicantOne, applicantOne.UserID, ports.UpdateUserInput{Password: &password})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestUserService_Update_ShortPassword(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	password := "seven77"
	_, err := svc.Update(context.Background(), applicantOne, applicantOne.UserID, ports.UpdateUserInput{Password: &password})
	requireKind(t, err, domain.KindInvalid)
}

func TestUserService_Update_EmptyPatch(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	_, err := svc.Update(context.Background(), applicantOne, applicantOne.UserID, ports.UpdateUserInput{})
	de := requireKind(t, err, domain.KindInvalid)
	if de.Message != "No valid fields provided for update" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}
