package entities

import "encoding/json"

// Event types the gateway subscribes to when registering its webhook.
const (
	EventSubscriptionActivated   = "BILLING.SUBSCRIPTION.ACTIVATED"
	EventSubscriptionCancelled   = "BILLING.SUBSCRIPTION.CANCELLED"
	EventSubscriptionExpired     = "BILLING.SUBSCRIPTION.EXPIRED"
	EventSubscriptionReactivated = "BILLING.SUBSCRIPTION.RE-ACTIVATED"
	EventSubscriptionSuspended   = "BILLING.SUBSCRIPTION.SUSPENDED"
	EventSaleCompleted           = "PAYMENT.SALE.COMPLETED"
)

// WebhookEventTypes is the allow-list sent to PayPal on registration.
func WebhookEventTypes() []string {
	return []string{
		EventSubscriptionActivated,
		EventSubscriptionCancelled,
		EventSubscriptionExpired,
		EventSubscriptionReactivated,
		EventSubscriptionSuspended,
		EventSaleCompleted,
	}
}

// WebhookEvent is the inbound notification envelope.
type WebhookEvent struct {
	EventType string          `json:"event_type"`
	Resource  WebhookResource `json:"resource"`
}

// WebhookResource carries the subscription the event refers to.
// CustomID is the local payment id round-tripped at creation time.
type WebhookResource struct {
	ID       string `json:"id"`
	CustomID string `json:"custom_id"`
	Status   string `json:"status"`
}

// WebhookHeaders are the transmission headers PayPal signs each
// delivery with. All five must be submitted back on verification.
type WebhookHeaders struct {
	AuthAlgo         string `json:"auth_algo"`
	CertURL          string `json:"cert_url"`
	TransmissionID   string `json:"transmission_id"`
	TransmissionSig  string `json:"transmission_sig"`
	TransmissionTime string `json:"transmission_time"`
}

// WebhookVerification is the payload posted to the provider's
// verify-webhook-signature endpoint. WebhookEvent is the raw parsed
// body of the inbound request, forwarded untouched.
type WebhookVerification struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}
