package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	transporthttp "taskboard/internal/http"
	"taskboard/internal/platform/database"
	"taskboard/internal/platform/logging"
	"taskboard/internal/platform/migrate"
	"taskboard/internal/tasks"
	"taskboard/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogLevel)

	taskRepo, authRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize repositories", "error", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	taskSvc := tasks.NewService(taskRepo)
	authSvc := auth.NewService(authRepo, cfg.SessionTTL)

	var google *auth.GoogleAuthenticator
	if cfg.OAuthConfigured() {
		google, err = auth.NewGoogleAuthenticator(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		if err != nil {
			logger.Error("failed to initialize google authenticator", "error", err)
			os.Exit(1)
		}
	}

	assets, err := web.Assets()
	if err != nil {
		logger.Error("failed to load embedded client", "error", err)
		os.Exit(1)
	}

	var router http.Handler
	if google != nil {
		router = transporthttp.NewRouter(cfg, taskSvc, authSvc, google, assets, logger)
	} else {
		router = transporthttp.NewRouter(cfg, taskSvc, authSvc, nil, assets, logger)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go runSessionCleanup(ctx, authSvc, logger)

	go func() {
		logger.Info("Taskboard API listening", "addr", srv.Addr, "store", cfg.DataStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (tasks.Repository, auth.Repository, func(), error) {
	if cfg.UseInMemoryStore() {
		logger.Info("using in-memory repositories")
		return tasks.NewInMemoryRepository(seedLocalTasks()), auth.NewInMemoryRepository(), nil, nil
	}

	db, err := database.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	if err := migrate.Apply(ctx, db, logger); err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	logger.Info("connected to postgres")
	return tasks.NewPostgresRepository(db), auth.NewPostgresRepository(db), cleanup, nil
}

// runSessionCleanup periodically removes expired sessions so the session
// table does not grow without bound.
func runSessionCleanup(ctx context.Context, authSvc *auth.Service, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := authSvc.CleanupExpiredSessions(ctx)
			if err != nil {
				logger.Error("session cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("expired sessions removed", "count", removed)
			}
		}
	}
}
