package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// UserProfile is a user record plus derived profile flags.
type UserProfile struct {
	User      *domain.User
	HasResume bool
}

// UpdateUserInput is the boundary allow-list for profile updates. Password,
// when set, is re-validated and re-hashed by the service.
type UpdateUserInput struct {
	Name      *string
	Email     *string
	Education *string
	Password  *string
}

// UserService defines use-case operations for user profiles.
type UserService interface {
	// List returns all accounts; callers must be authenticated.
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*UserProfile, error)
	// Update applies the input; callers may only update their own profile.
	Update(ctx context.Context, caller Identity, id int64, input UpdateUserInput) (*domain.User, error)
}
