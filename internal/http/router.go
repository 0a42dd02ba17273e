package http

import (
	"io/fs"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/tasks"
)

// NewRouter wires application routes and middleware using chi.
func NewRouter(cfg config.Config, taskSvc *tasks.Service, authSvc *auth.Service, google googleAuthenticator, staticAssets fs.FS, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(newSecurityHeadersMiddleware(cfg.Environment))
	r.Use(newSlogMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"environment": cfg.Environment,
		})
	})

	sessionHandler := NewSessionHandler(authSvc, cfg.Environment, logger)
	taskHandler := NewTaskHandler(taskSvc, logger)

	r.Route("/api", func(r chi.Router) {
		if google != nil {
			oauthHandler := NewOAuthHandler(google, authSvc, cfg.FrontendURL, cfg.Environment, logger)
			r.Route("/auth/google", func(r chi.Router) {
				r.Get("/", oauthHandler.InitiateGoogle)
				r.Get("/callback", oauthHandler.CallbackGoogle)
			})
		} else {
			logger.Warn("google sign-in disabled; OAuth credentials not configured")
		}

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.Status)
			r.Delete("/", sessionHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(newAuthMiddleware(authSvc, logger))
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Patch("/", taskHandler.Update)
					r.Delete("/", taskHandler.Delete)
				})
			})
		})
	})

	if staticAssets != nil {
		r.NotFound(newStaticHandler(staticAssets).ServeHTTP)
	} else {
		r.NotFound(http.NotFoundHandler().ServeHTTP)
	}

	return r
}
