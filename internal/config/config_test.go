package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeConfigFile writes a config.yaml into a temp dir and returns the dir.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return dir
}

const validConfig = `
api:
  host: 0.0.0.0
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
auth:
  webhook_secret: test-secret
queue:
  type: sqs
  suffix: staging
  sqs_region: us-west-2
logging:
  level: info
`

func TestLoad_ValidConfigFile(t *testing.T) {
	dir := writeConfigFile(t, validConfig)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("expected API host 0.0.0.0, got %s", cfg.API.Host)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("expected API port 8080, got %d", cfg.API.Port)
	}
	if cfg.API.ReadTimeout != 10*time.Second {
		t.Errorf("expected read timeout 10s, got %v", cfg.API.ReadTimeout)
	}
	if cfg.API.WriteTimeout != 10*time.Second {
		t.Errorf("expected write timeout 10s, got %v", cfg.API.WriteTimeout)
	}
	if cfg.Auth.WebhookSecret != "test-secret" {
		t.Errorf("expected webhook secret test-secret, got %s", cfg.Auth.WebhookSecret)
	}
	if cfg.Queue.Type != "sqs" {
		t.Errorf("expected queue type sqs, got %s", cfg.Queue.Type)
	}
	if cfg.Queue.Suffix != "staging" {
		t.Errorf("expected queue suffix staging, got %s", cfg.Queue.Suffix)
	}
	if cfg.Queue.SQSRegion != "us-west-2" {
		t.Errorf("expected sqs region us-west-2, got %s", cfg.Queue.SQSRegion)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_EnvironmentVariableOverride(t *testing.T) {
	t.Setenv("SENDGRID_RELAY_AUTH_WEBHOOK_SECRET", "env-secret")

	dir := writeConfigFile(t, validConfig)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Auth.WebhookSecret != "env-secret" {
		t.Errorf("expected env override env-secret, got %s", cfg.Auth.WebhookSecret)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	dir := writeConfigFile(t, `
auth:
  webhook_secret: ""
queue:
  suffix: staging
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := cfg.Validate(); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestValidate_MissingSuffix(t *testing.T) {
	dir := writeConfigFile(t, `
auth:
  webhook_secret: test-secret
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := cfg.Validate(); !errors.Is(err, ErrMissingSuffix) {
		t.Errorf("expected ErrMissingSuffix, got %v", err)
	}
}

func TestValidate_Complete(t *testing.T) {
	dir := writeConfigFile(t, validConfig)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
