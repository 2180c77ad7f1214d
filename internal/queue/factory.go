package queue

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewPublisher creates a Publisher for the configured backend.
func NewPublisher(cfg Config, log zerolog.Logger) (Publisher, error) {
	switch cfg.Type {
	case "sqs", "":
		client, err := newAWSSQSClient(cfg.SQSRegion)
		if err != nil {
			return nil, fmt.Errorf("create sqs client: %w", err)
		}
		return NewSQSPublisher(client, log), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisPublisher(client, log), nil

	default:
		return nil, fmt.Errorf("unknown queue type: %s", cfg.Type)
	}
}
