package entities

import "testing"

func TestGatewayMode_ModeScopedKeys(t *testing.T) {
	cases := []struct {
		mode           GatewayMode
		wantBaseURL    string
		wantPlanKey    string
		wantWebhookKey string
	}{
		{GatewayModeSandbox, "https://api-m.sandbox.paypal.com/v1", "sandbox_plan_id", "paypal_sandbox_webhook_id"},
		{GatewayModeLive, "https://api-m.paypal.com/v1", "plan_id", "paypal_webhook_id"},
		// Anything unrecognized falls back to sandbox.
		{GatewayMode(""), "https://api-m.sandbox.paypal.com/v1", "sandbox_plan_id", "paypal_sandbox_webhook_id"},
	}

	for _, c := range cases {
		if got := c.mode.BaseURL(); got != c.wantBaseURL {
			t.Fatalf("mode %q base url = %q, want %q", c.mode, got, c.wantBaseURL)
		}
		if got := c.mode.PlanDataKey(); got != c.wantPlanKey {
			t.Fatalf("mode %q plan key = %q, want %q", c.mode, got, c.wantPlanKey)
		}
		if got := c.mode.WebhookSettingKey(); got != c.wantWebhookKey {
			t.Fatalf("mode %q webhook key = %q, want %q", c.mode, got, c.wantWebhookKey)
		}
	}
}

func TestPrice_PlanID(t *testing.T) {
	p := Price{Data: map[string]string{"sandbox_plan_id": "P-SAND", "plan_id": "P-LIVE"}}

	if got := p.PlanID(GatewayModeSandbox); got != "P-SAND" {
		t.Fatalf("sandbox plan id = %q", got)
	}
	if got := p.PlanID(GatewayModeLive); got != "P-LIVE" {
		t.Fatalf("live plan id = %q", got)
	}
	if got := (Price{}).PlanID(GatewayModeSandbox); got != "" {
		t.Fatalf("expected empty plan id for nil data, got %q", got)
	}
}

func TestSubscriptionSession_ApproveLink(t *testing.T) {
	s := SubscriptionSession{Links: []SubscriptionLink{
		{Href: "https://api.example.com/self", Rel: "self"},
		{Href: "https://www.example.com/approve", Rel: "approve"},
	}}
	if got := s.ApproveLink(); got != "https://www.example.com/approve" {
		t.Fatalf("approve link = %q", got)
	}

	if got := (SubscriptionSession{}).ApproveLink(); got != "" {
		t.Fatalf("expected empty approve link, got %q", got)
	}
}
