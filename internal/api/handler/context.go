package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/api/middleware"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a usable user id and a
// known role prove the middleware ran.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(int64)
	role, _ := c.Get(middleware.CtxRole).(string)

	if userID < 1 || !domain.Role(role).Valid() {
		return ports.Identity{}, domain.Unauthorized("Missing authentication claims")
	}

	return ports.Identity{UserID: userID, Role: domain.Role(role)}, nil
}
