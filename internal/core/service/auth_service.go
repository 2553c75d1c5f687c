package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrackr/jobtrackr-api/internal/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration, login and session lifecycle. Each
// successful login opens an independent session: concurrent logins for the
// same user coexist, and logging one out leaves the others live.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	tokens   *auth.TokenManager
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	role := domain.Role(input.Role)
	if !role.Valid() {
		return "", domain.Invalid("Invalid role")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", domain.Invalid("User already exists.")
	} else if !isNotFound(err) {
		return "", domain.Internal("user lookup failed", err)
	}

	if len(input.Password) < minPasswordLength {
		return "", domain.Invalid("Password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.Internal("password hashing failed", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         input.Name,
	})
	if err != nil {
		return "", err
	}

	return s.openSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	// Unknown email and wrong password collapse to one message so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", nil, domain.Invalid("Invalid email or password")
		}
		return "", nil, domain.Internal("user lookup failed", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.Invalid("Invalid email or password")
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// openSession mints a fresh session id, records it in the session store and
// issues the matching signed token.
func (s *AuthService) openSession(ctx context.Context, user *domain.User) (string, error) {
	sessionID := uuid.NewString()

	err := s.sessions.Put(ctx, sessionID, &domain.Session{
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", domain.Internal("session store unavailable", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role, sessionID)
	if err != nil {
		return "", domain.Internal("token signing failed", err)
	}
	return token, nil
}

// isNotFound reports whether err is a NotFound domain error.
func isNotFound(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && de.Kind == domain.KindNotFound
}
