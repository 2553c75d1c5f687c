package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or a NotFound error.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all accounts, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies the non-nil fields of patch to the user row.
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	// HasResume reports whether the user has an uploaded resume.
	HasResume(ctx context.Context, userID int64) (bool, error)
}

// UserPatch is the typed partial-update structure produced by the boundary
// allow-list validator. Nil means "leave unchanged".
type UserPatch struct {
	Name         *string
	Email        *string
	Education    *string
	PasswordHash *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Education == nil && p.PasswordHash == nil
}
