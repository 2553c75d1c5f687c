// Package auth mints and validates the signed session tokens carried in the
// auth cookie. Verification is stateless; session liveness is a separate
// check against the session store so logout can revoke a token before its
// natural expiry.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// DefaultValidity is the token lifetime when none is configured.
const DefaultValidity = 7 * 24 * time.Hour

// Claims are the token claims: user id, role snapshot and the session
// identifier (jti) correlating the token with its session record.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionID returns the embedded session identifier.
func (c *Claims) SessionID() string { return c.RegisteredClaims.ID }

// TokenManager issues and verifies HS256-signed session tokens.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

func NewTokenManager(secret string, validity time.Duration) *TokenManager {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &TokenManager{secret: []byte(secret), validity: validity}
}

// Issue produces a signed token embedding {id, role, jti, exp}.
func (m *TokenManager) Issue(userID int64, role domain.Role, sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
// Tokens signed with a different key or algorithm are rejected, as are
// tokens whose claims are structurally unusable (bad id, unknown role,
// missing jti). All failures map to Unauthorized.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.Unauthorized("invalid or expired token")
	}

	if claims.UserID < 1 || !domain.Role(claims.Role).Valid() || claims.SessionID() == "" {
		return nil, domain.Unauthorized("invalid token payload")
	}

	return claims, nil
}
