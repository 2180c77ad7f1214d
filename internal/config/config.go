package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sungwon/sendgrid-event-relay/internal/queue"
)

// Config holds all application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Queue   queue.Config  `mapstructure:"queue"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds HTTP server configuration.
type APIConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AuthConfig holds webhook authentication configuration.
type AuthConfig struct {
	// WebhookSecret is the shared secret SendGrid must present as the
	// "auth" query parameter on webhook calls. Required.
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"` // stdout (default) or file
	FilePath  string `mapstructure:"file_path"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// Startup validation errors.
var (
	ErrMissingSecret = errors.New("auth.webhook_secret is required")
	ErrMissingSuffix = errors.New("queue.suffix is required")
)

// Load reads configuration from the given config directory path.
// It looks for a file named "config.yaml" in that directory.
// Environment variables with prefix SENDGRID_RELAY_ override file values.
// For example, SENDGRID_RELAY_AUTH_WEBHOOK_SECRET overrides auth.webhook_secret.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix("SENDGRID_RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks startup requirements. The process must not start when
// the webhook secret or the queue name suffix is absent.
func (c *Config) Validate() error {
	if c.Auth.WebhookSecret == "" {
		return ErrMissingSecret
	}
	if c.Queue.Suffix == "" {
		return ErrMissingSuffix
	}
	return nil
}
