package queue

// Config holds configuration for the queue publisher.
type Config struct {
	// Type selects the queue backend: "sqs" (default) or "redis".
	Type string `mapstructure:"type"`

	// Suffix is appended to the per-notification-type queue names,
	// e.g. "staging" yields "email-bounce-staging". Required.
	Suffix string `mapstructure:"suffix"`

	// SQS-specific config
	SQSRegion string `mapstructure:"sqs_region"`

	// Redis-specific config
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Type:      "sqs",
		SQSRegion: "us-east-1",
		RedisAddr: "localhost:6379",
	}
}
