package entities

// GatewayMode selects the PayPal environment a gateway instance talks to.
//
// The mode decides both the REST base URL and which of the two persisted
// webhook-id slots is read/written. It never changes at runtime for a
// wired gateway; switching modes is a redeploy concern of the host panel.

type GatewayMode string

const (
	GatewayModeSandbox GatewayMode = "sandbox"
	GatewayModeLive    GatewayMode = "live"
)

const (
	liveBaseURL    = "https://api-m.paypal.com/v1"
	sandboxBaseURL = "https://api-m.sandbox.paypal.com/v1"
)

// BaseURL returns the PayPal REST v1 base for the mode. Anything that
// is not explicitly live is treated as sandbox.
func (m GatewayMode) BaseURL() string {
	if m == GatewayModeLive {
		return liveBaseURL
	}
	return sandboxBaseURL
}

// PlanDataKey is the key under which a remote plan id is memoized in
// Price.Data for this mode.
func (m GatewayMode) PlanDataKey() string {
	if m == GatewayModeLive {
		return "plan_id"
	}
	return "sandbox_plan_id"
}

// WebhookSettingKey is the settings-store slot holding the registered
// webhook id for this mode.
func (m GatewayMode) WebhookSettingKey() string {
	if m == GatewayModeLive {
		return "paypal_webhook_id"
	}
	return "paypal_sandbox_webhook_id"
}

// GatewayConfig is the admin-provided gateway configuration.
//
// Owned by the host's gateway-configuration store; the core only reads it.

type GatewayConfig struct {
	Mode         GatewayMode `json:"paypal_mode"`
	ClientID     string      `json:"paypal_client_id"`
	ClientSecret string      `json:"paypal_client_secret"`
}
