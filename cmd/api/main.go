// JobTrackr API server.
//
// @title        JobTrackr API
// @version      1.0
// @description  HTTP JSON API for tracking job applications, postings and resume feedback.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobtrackr/jobtrackr-api/internal/api"
	"github.com/jobtrackr/jobtrackr-api/internal/api/handler"
	"github.com/jobtrackr/jobtrackr-api/internal/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/config"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/db/postgres"
	redisdb "github.com/jobtrackr/jobtrackr-api/internal/infrastructure/db/redis"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/feedback"
	"github.com/jobtrackr/jobtrackr-api/internal/infrastructure/storage"
	"github.com/jobtrackr/jobtrackr-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	cache, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer cache.Close()

	objects, err := storage.New(ctx, storage.Config{
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise object storage")
	}

	e := api.NewRouter(api.Dependencies{
		DB:       pool,
		Cache:    cache,
		Sessions: redisdb.NewSessionStore(cache, cfg.SessionTTL()),
		Objects:  objects,
		Reviewer: feedback.NewOpenAIReviewer(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		Tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		Cookies: handler.CookieOptions{
			Secure: cfg.IsProduction(),
			MaxAge: cfg.SessionTTL(),
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
