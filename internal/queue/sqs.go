package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SQSPublisher publishes payloads to AWS SQS queues addressed by name.
// Queue URLs are resolved via GetQueueUrl on first use and cached.
type SQSPublisher struct {
	client sqsAPI
	log    zerolog.Logger

	mu   sync.Mutex
	urls map[string]string // queue name -> resolved URL
}

// NewSQSPublisher creates an SQSPublisher using the given client.
func NewSQSPublisher(client sqsAPI, log zerolog.Logger) *SQSPublisher {
	return &SQSPublisher{
		client: client,
		log:    log,
		urls:   make(map[string]string),
	}
}

// Publish serializes the payload to JSON and sends it to the named queue.
func (p *SQSPublisher) Publish(ctx context.Context, queueName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url, err := p.queueURL(ctx, queueName)
	if err != nil {
		PublishFailuresTotal.WithLabelValues(queueName).Inc()
		return fmt.Errorf("resolve queue %s: %w", queueName, err)
	}

	start := time.Now()
	out, err := p.client.SendMessage(ctx, &sqsSendInput{
		QueueURL:    url,
		MessageBody: string(data),
	})
	PublishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		PublishFailuresTotal.WithLabelValues(queueName).Inc()
		return fmt.Errorf("sqs send to %s: %w", queueName, err)
	}

	MessagesPublishedTotal.WithLabelValues(queueName).Inc()

	p.log.Debug().
		Str("queue", queueName).
		Str("sqs_message_id", out.MessageID).
		Msg("message published")

	return nil
}

// queueURL returns the cached URL for a queue name, resolving it once.
func (p *SQSPublisher) queueURL(ctx context.Context, queueName string) (string, error) {
	p.mu.Lock()
	url, ok := p.urls[queueName]
	p.mu.Unlock()
	if ok {
		return url, nil
	}

	url, err := p.client.GetQueueURL(ctx, queueName)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.urls[queueName] = url
	p.mu.Unlock()

	return url, nil
}
