package event

import (
	"strings"
	"time"
)

// isoMillis renders timestamps as ISO-8601 UTC with millisecond precision,
// e.g. "2021-01-01T00:00:00.000Z".
const isoMillis = "2006-01-02T15:04:05.000Z"

// filterMarker separates SendGrid's original message ID from the internal
// filter suffix appended on webhook events.
const filterMarker = ".filter"

// Normalize validates and reshapes a raw SendGrid event into a Notification.
// It returns false for events missing required fields or carrying an
// unrecognized event type; such events are dropped silently so one bad
// entry never aborts a batch.
func Normalize(raw RawEvent) (*Notification, bool) {
	if !raw.hasRequiredFields() {
		return nil, false
	}

	mail := Mail{
		Timestamp: time.Unix(raw.Timestamp, 0).UTC().Format(isoMillis),
		MessageID: trimMessageID(raw.SGMessageID),
	}

	switch raw.Event {
	case "bounce", "dropped":
		return &Notification{
			NotificationType: TypeBounce,
			Mail:             mail,
			Bounce:           newBounce(raw, mail.Timestamp),
		}, true
	case "delivered":
		return &Notification{
			NotificationType: TypeDelivery,
			Mail:             mail,
			Delivery: &Delivery{
				Timestamp:    mail.Timestamp,
				Recipients:   []string{raw.Email},
				SMTPResponse: raw.Response,
			},
		}, true
	case "spamreport":
		return &Notification{
			NotificationType: TypeComplaint,
			Mail:             mail,
			Complaint: &Complaint{
				ComplainedRecipients: []Recipient{{EmailAddress: raw.Email}},
				Timestamp:            mail.Timestamp,
				FeedbackID:           raw.SGEventID,
			},
		}, true
	default:
		return nil, false
	}
}

// trimMessageID truncates a SendGrid message ID at the first ".filter"
// marker. IDs without the marker are returned unchanged.
func trimMessageID(id string) string {
	if i := strings.Index(id, filterMarker); i >= 0 {
		return id[:i]
	}
	return id
}

// newBounce classifies the bounce from the event type and SMTP status code.
// Dropped events are suppressions and always permanent; bounce events are
// classified from the "class.subject.detail" status triple.
func newBounce(raw RawEvent, timestamp string) *Bounce {
	bounceType, subType := classifyBounce(raw)
	return &Bounce{
		BounceType:        bounceType,
		BounceSubType:     subType,
		BouncedRecipients: []Recipient{{EmailAddress: raw.Email}},
		Timestamp:         timestamp,
		FeedbackID:        raw.SGEventID,
	}
}

// classifyBounce maps an event to (bounceType, bounceSubType), defaulting
// to Transient/General when the status code is malformed or unmapped.
func classifyBounce(raw RawEvent) (string, string) {
	if raw.Event == "dropped" {
		return BouncePermanent, SubTypeSuppressed
	}

	bounceType := BounceTransient
	subType := SubTypeGeneral

	parts := strings.Split(raw.Status, ".")
	if len(parts) != 3 {
		return bounceType, subType
	}
	class, subject, detail := parts[0], parts[1], parts[2]

	if class == "5" {
		bounceType = BouncePermanent
	}

	switch {
	case subject == "1":
		subType = SubTypeNoEmail
	case subject == "2" && detail == "2":
		subType = SubTypeMailboxFull
	case subject == "2" && detail == "3":
		subType = SubTypeMessageTooLarge
	case subject == "6":
		subType = SubTypeContentRejected
	}

	return bounceType, subType
}
