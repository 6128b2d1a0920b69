package interfaces

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
)

// INotifier delivers user-facing notifications through the host panel.
// Actual mail delivery is the panel's concern, not the gateway's.

type INotifier interface {
	SubscriptionActivated(ctx context.Context, payment entities.Payment) error
}
