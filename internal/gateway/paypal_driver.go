package gateway

import (
	"context"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase"
)

// DriverKey doubles as the endpoint segment of the callback route
// (payment/return/paypal_subscriptions_gateway).
const DriverKey = "paypal_subscriptions_gateway"

// PayPalSubscriptionsDriver adapts the subscription and webhook
// usecases to the Driver capability surface.

type PayPalSubscriptionsDriver struct {
	subscriptions usecase.ISubscriptionUseCase
	webhooks      usecase.IWebhookUseCase
}

var _ Driver = (*PayPalSubscriptionsDriver)(nil)

func NewPayPalSubscriptionsDriver(subscriptions usecase.ISubscriptionUseCase, webhooks usecase.IWebhookUseCase) *PayPalSubscriptionsDriver {
	return &PayPalSubscriptionsDriver{subscriptions: subscriptions, webhooks: webhooks}
}

func (d *PayPalSubscriptionsDriver) Descriptor() Descriptor {
	return Descriptor{
		Driver:        DriverKey,
		Type:          "subscription",
		Endpoint:      DriverKey,
		RefundSupport: false,
	}
}

func (d *PayPalSubscriptionsDriver) DescribeConfig() []ConfigField {
	return []ConfigField{
		{Key: "paypal_client_id", Label: "PayPal Client ID", Type: "text"},
		{Key: "paypal_client_secret", Label: "PayPal Client Secret", Type: "password"},
		{Key: "paypal_mode", Label: "PayPal Mode", Type: "enum", Options: []string{
			string(entities.GatewayModeSandbox),
			string(entities.GatewayModeLive),
		}},
	}
}

func (d *PayPalSubscriptionsDriver) Provision(ctx context.Context, paymentID string) (string, error) {
	return d.subscriptions.CreateSubscription(ctx, paymentID)
}

func (d *PayPalSubscriptionsDriver) HandleCallback(ctx context.Context, headers entities.WebhookHeaders, rawBody []byte) error {
	return d.webhooks.HandleEvent(ctx, headers, rawBody)
}

func (d *PayPalSubscriptionsDriver) CheckStatus(ctx context.Context, subscriptionID string) (bool, error) {
	return d.subscriptions.CheckSubscription(ctx, subscriptionID)
}
