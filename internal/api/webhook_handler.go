package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sungwon/sendgrid-event-relay/internal/event"
	"github.com/sungwon/sendgrid-event-relay/internal/logger"
)

// Authenticator validates the webhook credential supplied by the caller.
type Authenticator interface {
	Authenticate(candidate string) bool
}

// Dispatcher publishes a batch of normalized notifications to their queues.
type Dispatcher interface {
	Dispatch(ctx context.Context, notifications []*event.Notification) error
}

// SendGridWebhookHandler handles POST /webhooks/sendgrid.
//
// Requests carrying a body must present the shared secret as the "auth"
// query parameter. The body is a JSON array of SendGrid events (a single
// object is coerced to a one-element batch). Malformed or unrecognized
// events are dropped without failing the batch; any decode or dispatch
// failure yields a generic 500 with the detail logged, never returned.
func SendGridWebhookHandler(authn Authenticator, disp Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error().Err(err).Msg("sendgrid webhook: read body failed")
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if len(body) > 0 {
			if !authn.Authenticate(r.URL.Query().Get("auth")) {
				AuthFailuresTotal.Inc()
				log.Warn().Msg("sendgrid webhook: authentication failed")
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}

		events, err := decodeEvents(body)
		if err != nil {
			log.Error().Err(err).Msg("sendgrid webhook: invalid payload")
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		notifications := make([]*event.Notification, 0, len(events))
		for _, raw := range events {
			EventsReceivedTotal.Inc()
			n, ok := event.Normalize(raw)
			if !ok {
				EventsDroppedTotal.Inc()
				log.Debug().
					Str("event", raw.Event).
					Str("sg_message_id", raw.SGMessageID).
					Msg("sendgrid webhook: event dropped")
				continue
			}
			notifications = append(notifications, n)
		}

		if err := disp.Dispatch(r.Context(), notifications); err != nil {
			log.Error().Err(err).Msg("sendgrid webhook: dispatch failed")
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		for _, n := range notifications {
			EventsDispatchedTotal.WithLabelValues(string(n.NotificationType)).Inc()
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("%d events processed", len(notifications)),
		})
	}
}

// decodeEvents parses the request body as a batch of raw events. SendGrid
// posts an array, but a bare event object is accepted and wrapped in a
// one-element batch. An empty body decodes to an empty batch.
func decodeEvents(body []byte) ([]event.RawEvent, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var events []event.RawEvent
	if err := json.Unmarshal(body, &events); err == nil {
		return events, nil
	}

	var single event.RawEvent
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return []event.RawEvent{single}, nil
}
