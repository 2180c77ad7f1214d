package event

// RawEvent is a single entry from the SendGrid event webhook payload.
// All fields are untrusted; events missing required fields are dropped
// during normalization.
type RawEvent struct {
	// Timestamp is the event time in Unix seconds.
	Timestamp int64 `json:"timestamp"`
	// SGMessageID is SendGrid's message identifier. SendGrid appends an
	// internal ".filter..." suffix to the ID it returned at send time.
	SGMessageID string `json:"sg_message_id"`
	// Event is the event type: bounce, delivered, dropped, spamreport.
	Event string `json:"event"`
	// Email is the recipient address the event refers to.
	Email string `json:"email"`
	// Status is the SMTP status triple for bounces, e.g. "5.1.1".
	Status string `json:"status"`
	// Response is the raw SMTP response line for delivered events.
	Response string `json:"response"`
	// SGEventID uniquely identifies the event; used as the feedback ID.
	SGEventID string `json:"sg_event_id"`
}

// hasRequiredFields reports whether the event carries the fields every
// notification needs. Zero timestamps are treated as missing.
func (e RawEvent) hasRequiredFields() bool {
	return e.Timestamp != 0 && e.SGMessageID != "" && e.Event != ""
}
