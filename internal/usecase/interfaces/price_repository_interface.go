package interfaces

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
)

// IPriceRepository abstracts DynamoDB persistence for Price.
//
// SetDataKey must be durable before the written value is used: the plan
// provisioner memoizes remote plan ids through it and relies on the
// write surviving a retry.

type IPriceRepository interface {
	Create(ctx context.Context, p entities.Price) (entities.Price, error)
	GetByID(ctx context.Context, id string) (entities.Price, error)
	SetDataKey(ctx context.Context, id string, key string, value string) (entities.Price, error)
}

// IPackageRepository abstracts DynamoDB persistence for Package.

type IPackageRepository interface {
	Create(ctx context.Context, p entities.Package) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)
}
