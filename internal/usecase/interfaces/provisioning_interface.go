package interfaces

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
)

// IPlanProvisioner ensures a remote billing plan exists for a price.
// Idempotent per (price, gateway mode): a memoized plan id is returned
// with zero network calls.

type IPlanProvisioner interface {
	EnsurePlan(ctx context.Context, price entities.Price) (planID string, err error)
}

// IWebhookRegistrar resolves the provider-issued webhook id for the
// current mode, registering the callback URL on first use.

type IWebhookRegistrar interface {
	EnsureWebhookID(ctx context.Context) (string, error)
}
