package entities

import "time"

// PaymentStatus represents the lifecycle of a local payment.
//
// The gateway only ever moves a payment forward to completed; the
// transition is one-way and terminal.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is the local payment record the gateway provisions a remote
// subscription for. It is created by the host before the gateway runs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The payment id is round-tripped through PayPal as custom_id so that
// inbound webhook events can be correlated back to this record.

type Payment struct {
	ID             string        `json:"id"`
	PriceID        string        `json:"price_id"`
	PackageID      string        `json:"package_id"`
	UserEmail      string        `json:"user_email"`
	Status         PaymentStatus `json:"status"`
	SubscriptionID string        `json:"subscription_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
}
