package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// UserService implements profile use cases.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hasResume, err := s.users.HasResume(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserProfile{User: user, HasResume: hasResume}, nil
}

func (s *UserService) Update(ctx context.Context, caller ports.Identity, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if caller.UserID != id {
		return nil, domain.Unauthorized("You are not authorized to update this user")
	}

	patch := ports.UserPatch{
		Name:      input.Name,
		Email:     input.Email,
		Education: input.Education,
	}
	if input.Password != nil {
		if len(*input.Password) < minPasswordLength {
			return nil, domain.Invalid("Password must be at least 8 characters long")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.Internal("password hashing failed", err)
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	if patch.Empty() {
		return nil, domain.Invalid("No valid fields provided for update")
	}
	return s.users.Update(ctx, id, patch)
}
