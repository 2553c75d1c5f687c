package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/api/metrics"
	"github.com/jobtrackr/jobtrackr-api/internal/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// CookieName is the transport field carrying the session token.
const CookieName = "token"

// Context keys set by Auth and read by handlers.
const (
	CtxUserID    = "user_id"
	CtxRole      = "role"
	CtxSessionID = "session_id"
)

// Auth validates the session token from the auth cookie and injects the
// verified identity into the request context.
//
// Every authenticated route performs both checks: the stateless signature and
// expiry check, and the session-liveness lookup. Logout therefore revokes a
// token immediately on all routes, not just best-effort. A session store
// connectivity failure is an internal fault, never an authentication result.
func Auth(tokens *auth.TokenManager, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.Unauthorized("Missing or invalid authorization token")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			session, err := sessions.Get(c.Request().Context(), claims.SessionID())
			if err != nil {
				return domain.Internal("session store unavailable", err)
			}
			if session == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("session_revoked").Inc()
				return domain.Unauthorized("Session expired or revoked")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxSessionID, claims.SessionID())

			return next(c)
		}
	}
}
