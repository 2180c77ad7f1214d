package event

// NotificationType distinguishes the three normalized notification kinds.
type NotificationType string

// Notification types, matching the AWS SES notification vocabulary so
// downstream consumers can handle SES and SendGrid events uniformly.
const (
	TypeBounce    NotificationType = "Bounce"
	TypeDelivery  NotificationType = "Delivery"
	TypeComplaint NotificationType = "Complaint"
)

// Bounce classification values.
const (
	BouncePermanent = "Permanent"
	BounceTransient = "Transient"

	SubTypeGeneral         = "General"
	SubTypeSuppressed      = "Suppressed"
	SubTypeNoEmail         = "NoEmail"
	SubTypeMailboxFull     = "MailboxFull"
	SubTypeMessageTooLarge = "MessageTooLarge"
	SubTypeContentRejected = "ContentRejected"
)

// Notification is the provider-agnostic record published to the queues.
// Exactly one of Bounce, Delivery, or Complaint is set, matching
// NotificationType. The JSON shape follows the AWS SES notification schema.
type Notification struct {
	NotificationType NotificationType `json:"notificationType"`
	Mail             Mail             `json:"mail"`
	Bounce           *Bounce          `json:"bounce,omitempty"`
	Delivery         *Delivery        `json:"delivery,omitempty"`
	Complaint        *Complaint       `json:"complaint,omitempty"`
}

// Mail carries the fields shared by every notification type.
type Mail struct {
	Timestamp string `json:"timestamp"`
	MessageID string `json:"messageId"`
}

// Bounce describes a permanent or transient delivery failure.
type Bounce struct {
	BounceType        string      `json:"bounceType"`
	BounceSubType     string      `json:"bounceSubType"`
	BouncedRecipients []Recipient `json:"bouncedRecipients"`
	Timestamp         string      `json:"timestamp"`
	FeedbackID        string      `json:"feedbackId"`
}

// Delivery confirms a message reached its destination.
type Delivery struct {
	Timestamp    string   `json:"timestamp"`
	Recipients   []string `json:"recipients"`
	SMTPResponse string   `json:"smtpResponse"`
}

// Complaint describes a recipient-reported spam signal.
type Complaint struct {
	ComplainedRecipients []Recipient `json:"complainedRecipients"`
	Timestamp            string      `json:"timestamp"`
	FeedbackID           string      `json:"feedbackId"`
}

// Recipient wraps a single email address.
type Recipient struct {
	EmailAddress string `json:"emailAddress"`
}
