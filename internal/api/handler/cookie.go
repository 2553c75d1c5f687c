package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/api/middleware"
)

// CookieOptions controls the attributes of the auth cookie.
type CookieOptions struct {
	// Secure marks the cookie HTTPS-only; enabled in production.
	Secure bool
	// MaxAge matches the session TTL.
	MaxAge time.Duration
}

// setAuthCookie attaches the session token as an HTTP-only, SameSite=Strict
// cookie scoped to the whole site.
func setAuthCookie(c echo.Context, token string, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearAuthCookie expires the auth cookie immediately.
func clearAuthCookie(c echo.Context, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
