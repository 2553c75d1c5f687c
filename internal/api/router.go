// Package api assembles the HTTP surface: routing, middleware, error
// handling and metrics exposure.
package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/jobtrackr/jobtrackr-api/docs"
	"github.com/jobtrackr/jobtrackr-api/internal/api/handler"
	"github.com/jobtrackr/jobtrackr-api/internal/api/middleware"
	"github.com/jobtrackr/jobtrackr-api/internal/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
	"github.com/jobtrackr/jobtrackr-api/internal/core/service"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/db/postgres"
	redisstore "github.com/jobtrackr/jobtrackr-api/internal/infrastructure/db/redis"
)

// Dependencies carries the process-level resources the router wires into
// handlers and services.
type Dependencies struct {
	DB       *pgxpool.Pool
	Cache    *redis.Client
	Sessions *redisstore.SessionStore
	Objects  ports.ObjectStorage
	Reviewer ports.FeedbackEngine
	Tokens   *auth.TokenManager
	Cookies  handler.CookieOptions
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobtrackr"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.DB)
	jobRepo := postgres.NewJobRepository(deps.DB)
	appRepo := postgres.NewApplicationRepository(deps.DB)
	resumeRepo := postgres.NewResumeRepository(deps.DB)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Sessions, deps.Tokens)
	jobService := service.NewJobService(jobRepo)
	appService := service.NewApplicationService(appRepo, jobRepo)
	resumeService := service.NewResumeService(resumeRepo, jobRepo, deps.Objects, deps.Reviewer, deps.Log)
	userService := service.NewUserService(userRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.Tokens, deps.Cookies, deps.Log)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Cache)

	authed := middleware.Auth(deps.Tokens, deps.Sessions)
	recruiterOnly := func(action string) echo.MiddlewareFunc {
		return middleware.RequireRole(domain.RoleRecruiter, action)
	}
	applicantOnly := func(action string) echo.MiddlewareFunc {
		return middleware.RequireRole(domain.RoleApplicant, action)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- Jobs ---
	jobs := e.Group("/jobs", authed)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, recruiterOnly("post jobs"))
	jobs.PUT("/:id", jobHandler.Update, recruiterOnly("update jobs"))
	jobs.DELETE("/:id", jobHandler.Delete, recruiterOnly("delete jobs"))
	jobs.GET("/:id/applicants", jobHandler.ListApplicants, recruiterOnly("view applicants"))

	// --- Applications ---
	apps := e.Group("/applications", authed)
	apps.GET("", appHandler.List, applicantOnly("view applications"))
	apps.POST("", appHandler.Create, applicantOnly("apply to jobs"))
	apps.GET("/:id", appHandler.Get)
	apps.PUT("/:id", appHandler.Update, applicantOnly("update applications"))
	apps.DELETE("/:id", appHandler.Delete, applicantOnly("delete applications"))

	// --- Resumes ---
	resumes := e.Group("/resumes", authed)
	resumes.POST("", resumeHandler.Upload, applicantOnly("upload resumes"))
	resumes.GET("", resumeHandler.Get)
	resumes.GET("/feedback", resumeHandler.Feedback)

	// --- Users ---
	users := e.Group("/users", authed)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
