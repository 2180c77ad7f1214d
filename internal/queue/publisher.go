package queue

import "context"

// Publisher delivers a single payload to a named queue. Implementations
// must be safe for concurrent use; the dispatcher publishes a whole batch
// in flight at once.
type Publisher interface {
	Publish(ctx context.Context, queueName string, payload any) error
}
