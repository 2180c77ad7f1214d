package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sungwon/sendgrid-event-relay/internal/logger"
)

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	var captured string
	handler := CorrelationIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = logger.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured == "" {
		t.Error("expected correlation ID in request context")
	}
	if rec.Header().Get("X-Correlation-ID") != captured {
		t.Errorf("expected response header to carry correlation ID %s, got %s",
			captured, rec.Header().Get("X-Correlation-ID"))
	}
}

func TestCorrelationIDMiddleware_EchoesProvidedID(t *testing.T) {
	handler := CorrelationIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Correlation-ID", "upstream-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Correlation-ID") != "upstream-42" {
		t.Errorf("expected upstream-42, got %s", rec.Header().Get("X-Correlation-ID"))
	}
}

func TestRecoverMiddleware_ReturnsGeneric500(t *testing.T) {
	handler := RecoverMiddleware(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhooks/sendgrid", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "internal server error") {
		t.Errorf("expected generic error body, got %s", body)
	}
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	handler := LoggingMiddleware(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status to pass through, got %d", rec.Code)
	}
}
