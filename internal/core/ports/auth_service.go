package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Name     string
}

// AuthService implements registration, login and session lifecycle.
type AuthService interface {
	// Register creates the account, opens a session and returns the signed
	// session token.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies credentials, opens a fresh session (existing sessions
	// for the user stay live) and returns the token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the session. Revoking an absent session is a no-op.
	Logout(ctx context.Context, sessionID string) error
	// Me returns the account behind a verified identity.
	Me(ctx context.Context, userID int64) (*domain.User, error)
}
