package interfaces

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
)

// IPayPalGateway abstracts the PayPal REST v1 API surface the gateway
// needs. Implementations own authentication (token exchange + cache)
// and the sandbox/live base-URL selection.
//
// All methods are blocking round trips; an error means the operation
// cannot proceed and callers degrade instead of retrying inline.

type IPayPalGateway interface {
	CreateProduct(ctx context.Context, name string) (productID string, err error)
	CreatePlan(ctx context.Context, spec entities.PlanSpec) (planID string, err error)
	CreateSubscription(ctx context.Context, planID, customID, returnURL, cancelURL string) (entities.SubscriptionSession, error)
	GetSubscriptionStatus(ctx context.Context, subscriptionID string) (string, error)
	CreateWebhook(ctx context.Context, callbackURL string, eventTypes []string) (webhookID string, err error)
	VerifyWebhookSignature(ctx context.Context, v entities.WebhookVerification) (bool, error)
}
