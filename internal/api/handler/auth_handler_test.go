package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtrackr-api/internal/api/middleware"
	"github.com/jobtrackr/jobtrackr-api/internal/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, sessionID string) error
	meFn       func(ctx context.Context, userID int64) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func newAuthHandler(stub *stubAuthService, tokens *auth.TokenManager) *AuthHandler {
	return NewAuthHandler(stub, tokens, CookieOptions{MaxAge: time.Hour}, zerolog.Nop())
}

func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func requireErrKind(t *testing.T, err error, kind domain.ErrorKind) *domain.Error {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if de.Kind != kind {
		t.Fatalf("expected kind %v, got %v (%s)", kind, de.Kind, de.Message)
	}
	return de
}

func TestAuthHandler_Register_Success(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			if input.Email != "alice@example.com" || input.Role != "APPLICANT" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token123", nil
		},
	}
	h := newAuthHandler(stub, tokens)

	c, rec := jsonContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"longenough","role":"APPLICANT","name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, middleware.CookieName)
	if cookie == nil || cookie.Value != "token123" {
		t.Fatalf("expected auth cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be HTTP-only and SameSite=Strict: %+v", cookie)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	c, _ := jsonContext(t, http.MethodPost, "/auth/register", `{"email":"alice@example.com"}`)

	requireErrKind(t, h.Register(c), domain.KindInvalid)
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			return "", domain.Invalid("User already exists.")
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	c, rec := jsonContext(t, http.MethodPost, "/auth/register",
		`{"email":"taken@example.com","password":"longenough","role":"APPLICANT","name":"Bob"}`)

	de := requireErrKind(t, h.Register(c), domain.KindInvalid)
	if de.Message != "User already exists." {
		t.Fatalf("unexpected message: %s", de.Message)
	}
	if cookie := findCookie(t, rec, middleware.CookieName); cookie != nil {
		t.Fatalf("no cookie must be set on failure")
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "longenough" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: 7, Email: email, Role: domain.RoleApplicant, Name: "Alice"}, nil
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	c, rec := jsonContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"longenough"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cookie := findCookie(t, rec, middleware.CookieName); cookie == nil || cookie.Value != "token123" {
		t.Fatalf("expected auth cookie, got %+v", cookie)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["role"] != "APPLICANT" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never appear in responses")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.Invalid("Invalid email or password")
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	c, _ := jsonContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)

	de := requireErrKind(t, h.Login(c), domain.KindInvalid)
	if de.Message != "Invalid email or password" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestAuthHandler_Logout_RevokesSession(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	token, err := tokens.Issue(7, domain.RoleApplicant, "sid-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	revoked := ""
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			revoked = sessionID
			return nil
		},
	}
	h := newAuthHandler(stub, tokens)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "sid-1" {
		t.Fatalf("expected session sid-1 revoked, got %q", revoked)
	}

	cookie := findCookie(t, rec, middleware.CookieName)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Logout is idempotent: no cookie still yields 200 with a cleared cookie.
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cookie := findCookie(t, rec, middleware.CookieName); cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	stub := &stubAuthService{
		meFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return &domain.User{ID: 7, Email: "alice@example.com", Role: domain.RoleApplicant, Name: "Alice"}, nil
		},
	}
	h := newAuthHandler(stub, auth.NewTokenManager("secret", time.Hour))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(7))
	c.Set(middleware.CtxRole, "APPLICANT")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := newAuthHandler(&stubAuthService{}, auth.NewTokenManager("secret", time.Hour))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	requireErrKind(t, h.Me(c), domain.KindUnauthorized)
}
