package notify

import "time"

// Notification templates consumed by the mailer worker
const (
	TemplateBookingReceived  = "booking.received"
	TemplateBookingAccepted  = "booking.accepted"
	TemplateBookingRejected  = "booking.rejected"
	TemplateBookingCompleted = "booking.completed"
	TemplateBookingCancelled = "booking.cancelled"
)

// Message is the JSON payload published to the notifications exchange.
// The delivery mechanics (rendering, SMTP) live in a separate consumer.
type Message struct {
	Template   string            `json:"template"`
	Recipient  string            `json:"recipient"`
	Variables  map[string]string `json:"variables,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
