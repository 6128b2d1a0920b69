package interfaces

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are created by the host panel before the gateway runs; the
// gateway only reads them and moves them to completed when a verified
// activation event arrives.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	MarkCompleted(ctx context.Context, id string, subscriptionID string) (entities.Payment, error)
}
