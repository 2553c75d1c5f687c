package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/api/metrics"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// RequireRole restricts a route to a single role. A mismatch yields
// Unauthorized with an action-specific message ("Only recruiters can post
// jobs"); wrong role and not authenticated share the same status.
func RequireRole(allowed domain.Role, action string) echo.MiddlewareFunc {
	message := "Only " + allowed.Label() + " can " + action

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if domain.Role(role) != allowed {
				metrics.AuthRejectionsTotal.WithLabelValues("wrong_role").Inc()
				return domain.Unauthorized(message)
			}
			return next(c)
		}
	}
}
