package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates a chi.Mux with all routes, middleware, and handlers configured.
func NewRouter(authn Authenticator, disp Dispatcher, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CorrelationIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(RecoverMiddleware(log))

	// Operational endpoints (no auth required)
	r.Get("/healthz", HealthzHandler())
	r.Method("GET", "/metrics", promhttp.Handler())

	// Webhook endpoint; authenticates via the "auth" query parameter
	r.Post("/webhooks/sendgrid", SendGridWebhookHandler(authn, disp))

	return r
}
