package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sungwon/sendgrid-event-relay/internal/event"
	"github.com/sungwon/sendgrid-event-relay/internal/queue"
)

// Dispatcher fans normalized notifications out to their per-type queues.
type Dispatcher struct {
	publisher queue.Publisher
	routes    map[event.NotificationType]string
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher routing each notification type to a
// queue named after it, composed with the environment suffix:
// email-bounce-<suffix>, email-complaint-<suffix>, email-delivery-<suffix>.
func NewDispatcher(publisher queue.Publisher, suffix string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		routes: map[event.NotificationType]string{
			event.TypeBounce:    "email-bounce-" + suffix,
			event.TypeComplaint: "email-complaint-" + suffix,
			event.TypeDelivery:  "email-delivery-" + suffix,
		},
		log: log,
	}
}

// QueueFor returns the destination queue name for a notification type.
func (d *Dispatcher) QueueFor(t event.NotificationType) (string, bool) {
	name, ok := d.routes[t]
	return name, ok
}

// Dispatch publishes every notification concurrently and waits for all
// publishes to settle. If any publish fails, the first error is returned;
// notifications already in flight are not cancelled and no rollback is
// attempted. Ordering between items is not preserved.
func (d *Dispatcher) Dispatch(ctx context.Context, notifications []*event.Notification) error {
	var g errgroup.Group
	for _, n := range notifications {
		n := n
		g.Go(func() error {
			return d.publish(ctx, n)
		})
	}
	return g.Wait()
}

// publish sends a single notification to its queue, logging the outcome.
func (d *Dispatcher) publish(ctx context.Context, n *event.Notification) error {
	queueName, ok := d.routes[n.NotificationType]
	if !ok {
		return fmt.Errorf("no queue configured for notification type %s", n.NotificationType)
	}

	if err := d.publisher.Publish(ctx, queueName, n); err != nil {
		d.log.Error().
			Err(err).
			Str("queue", queueName).
			Interface("notification", n).
			Msg("failed to publish notification")
		return fmt.Errorf("publish %s notification: %w", n.NotificationType, err)
	}

	d.log.Info().
		Str("type", string(n.NotificationType)).
		Str("queue", queueName).
		Msg("notification dispatched")

	return nil
}
