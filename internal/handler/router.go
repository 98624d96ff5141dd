package handler

import (
	"net/http"

	"github.com/formdrop/backend/internal/config"
	"github.com/formdrop/backend/internal/notify"
	"github.com/formdrop/backend/internal/service"
	"github.com/formdrop/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter assembles the full request surface.
func NewRouter(cfg config.Config, gate service.AuthService, submissions service.SubmissionService, notifier notify.Notifier) http.Handler {
	contactHandler := NewContactHandler(submissions)
	adminHandler := NewAdminHandler(gate, submissions, notifier)
	accessHandler := NewAccessHandler(notifier)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", auth.APIKeyHeader},
			AllowCredentials: true,
		}))
	}

	r.Get("/_health", Health)

	limiter := NewRateLimiter(cfg.ContactRateLimitPerMinute)
	r.Method(http.MethodPost, "/api/contact", limiter.Limit(http.HandlerFunc(contactHandler.Submit)))
	r.Post("/api/admin-access", accessHandler.Notify)

	r.Post("/admin/verify", adminHandler.Verify)
	r.Post("/admin/logout", adminHandler.Logout)

	// Admin gate: x-api-key header or session cookie.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(gate))
		r.Get("/admin/submissions", adminHandler.Submissions)
		// POST mirror for transports that block GET to API-like paths.
		r.Post("/admin/submissions", adminHandler.Submissions)
		r.Delete("/admin/submissions/{id}", adminHandler.Delete)
		r.Post("/admin/change-password", adminHandler.ChangePassword)
	})

	return r
}
