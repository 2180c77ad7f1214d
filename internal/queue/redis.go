package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisPublisher publishes payloads to Redis Streams, one stream per queue
// name. It serves local development and deployments without AWS access.
type RedisPublisher struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRedisPublisher creates a RedisPublisher backed by the given client.
func NewRedisPublisher(client *redis.Client, log zerolog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

// Publish serializes the payload to JSON and appends it to the stream named
// after the queue using XADD.
func (p *RedisPublisher) Publish(ctx context.Context, queueName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	start := time.Now()
	entryID, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: queueName,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	PublishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		PublishFailuresTotal.WithLabelValues(queueName).Inc()
		return fmt.Errorf("xadd to stream %s: %w", queueName, err)
	}

	MessagesPublishedTotal.WithLabelValues(queueName).Inc()

	p.log.Debug().
		Str("queue", queueName).
		Str("entry_id", entryID).
		Msg("message published")

	return nil
}
