package response

import "paypal_subscriptions/internal/gateway"

// GatewayResponse describes one registered driver to the host admin UI:
// the static descriptor plus the configuration schema.
type GatewayResponse struct {
	Driver        string                `json:"driver"`
	Type          string                `json:"type"`
	Endpoint      string                `json:"endpoint"`
	RefundSupport bool                  `json:"refund_support"`
	Config        []gateway.ConfigField `json:"config"`
}

func FromDriver(d gateway.Driver) GatewayResponse {
	desc := d.Descriptor()
	return GatewayResponse{
		Driver:        desc.Driver,
		Type:          desc.Type,
		Endpoint:      desc.Endpoint,
		RefundSupport: desc.RefundSupport,
		Config:        d.DescribeConfig(),
	}
}

// SubscriptionStatusResponse is the checkSubscription surface.
type SubscriptionStatusResponse struct {
	SubscriptionID string `json:"subscription_id"`
	Active         bool   `json:"active"`
}
