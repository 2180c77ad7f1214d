package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sungwon/sendgrid-event-relay/internal/api"
	"github.com/sungwon/sendgrid-event-relay/internal/auth"
	"github.com/sungwon/sendgrid-event-relay/internal/config"
	"github.com/sungwon/sendgrid-event-relay/internal/dispatch"
	"github.com/sungwon/sendgrid-event-relay/internal/logger"
	"github.com/sungwon/sendgrid-event-relay/internal/queue"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewFromConfig(logger.LoggingConfig{
		Level:     cfg.Logging.Level,
		Output:    cfg.Logging.Output,
		FilePath:  cfg.Logging.FilePath,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	})
	log.Info().Msg("starting relay server")

	// Startup requirements: webhook secret and queue suffix must be set
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Build authenticator from the configured secret
	authenticator, err := auth.NewAuthenticator(cfg.Auth.WebhookSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize authenticator")
	}

	// Build queue publisher (sqs or redis)
	publisher, err := queue.NewPublisher(cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue publisher")
	}
	log.Info().
		Str("backend", cfg.Queue.Type).
		Str("suffix", cfg.Queue.Suffix).
		Msg("queue publisher initialized")

	dispatcher := dispatch.NewDispatcher(publisher, cfg.Queue.Suffix, log)

	// Build router
	router := api.NewRouter(authenticator, dispatcher, log)

	// Configure HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("relay server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down server")

	// Graceful shutdown with 30-second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
