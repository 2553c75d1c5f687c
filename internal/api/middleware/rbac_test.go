package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

func roleContext(t *testing.T, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserID, int64(7))
	c.Set(CtxRole, role)
	return c, rec
}

func TestRequireRole_Match(t *testing.T) {
	c, rec := roleContext(t, "RECRUITER")

	called := false
	mw := RequireRole(domain.RoleRecruiter, "post jobs")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	c, _ := roleContext(t, "APPLICANT")

	mw := RequireRole(domain.RoleRecruiter, "post jobs")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	requireUnauthorized(t, handler(c), "Only recruiters can post jobs")
}

func TestRequireRole_MissingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireRole(domain.RoleApplicant, "apply to jobs")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	requireUnauthorized(t, handler(c), "Only applicants can apply to jobs")
}
