package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"paypal_subscriptions/internal/domain/entities"
)

// fakePayPal is an httptest-backed stand-in for the REST v1 API. Each
// handler is keyed by method+path; unregistered paths 404.
type fakePayPal struct {
	t            *testing.T
	server       *httptest.Server
	tokenCalls   atomic.Int64
	lastClientID string
	handlers     map[string]http.HandlerFunc
}

func newFakePayPal(t *testing.T) *fakePayPal {
	f := &fakePayPal{t: t, handlers: map[string]http.HandlerFunc{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || pass == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.lastClientID = user
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":32400}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if h, ok := f.handlers[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakePayPal) handle(methodAndPath string, h http.HandlerFunc) {
	f.handlers[methodAndPath] = h
}

func (f *fakePayPal) client() *Client {
	return NewClientWithBaseURL(entities.GatewayConfig{
		Mode:         entities.GatewayModeSandbox,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}, f.server.URL)
}

func TestClient_TokenCaching(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("POST /catalogs/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"PROD-1"}`))
	})
	c := fake.client()

	for i := 0; i < 3; i++ {
		if _, err := c.CreateProduct(context.Background(), "Gold"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	if got := fake.tokenCalls.Load(); got != 1 {
		t.Fatalf("expected a single token exchange within the ttl, got %d", got)
	}
	if fake.lastClientID != "client-id" {
		t.Fatalf("expected basic auth client id, got %q", fake.lastClientID)
	}
}

func TestClient_TokenExchangeFailure(t *testing.T) {
	fake := newFakePayPal(t)
	c := NewClientWithBaseURL(entities.GatewayConfig{
		Mode:     entities.GatewayModeSandbox,
		ClientID: "client-id",
		// Empty secret makes the fake reject the exchange.
	}, fake.server.URL)

	_, err := c.CreateProduct(context.Background(), "Gold")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "access token unavailable") {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestClient_CreateProduct(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("POST /catalogs/products", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding product request: %v", err)
		}
		if req["name"] != "Gold" || req["type"] != "SERVICE" || req["category"] != "SOFTWARE" {
			t.Fatalf("unexpected product request: %v", req)
		}
		if r.Header.Get("PayPal-Request-Id") == "" {
			t.Fatalf("expected PayPal-Request-Id header")
		}
		w.Write([]byte(`{"id":"PROD-1"}`))
	})

	id, err := fake.client().CreateProduct(context.Background(), "Gold")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "PROD-1" {
		t.Fatalf("expected PROD-1, got %q", id)
	}
}

func TestClient_CreatePlan(t *testing.T) {
	t.Run("without setup fee", func(t *testing.T) {
		fake := newFakePayPal(t)
		var raw map[string]any
		fake.handle("POST /billing/plans", func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
				t.Fatalf("decoding plan request: %v", err)
			}
			w.Write([]byte(`{"id":"P-1"}`))
		})

		id, err := fake.client().CreatePlan(context.Background(), entities.PlanSpec{
			ProductID:    "PROD-1",
			Name:         "Gold",
			IntervalDays: 30,
			Price:        9.99,
			Currency:     "USD",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "P-1" {
			t.Fatalf("expected P-1, got %q", id)
		}

		if raw["product_id"] != "PROD-1" {
			t.Fatalf("unexpected product_id: %v", raw["product_id"])
		}
		cycles := raw["billing_cycles"].([]any)
		if len(cycles) != 1 {
			t.Fatalf("expected a single billing cycle, got %d", len(cycles))
		}
		cycle := cycles[0].(map[string]any)
		freq := cycle["frequency"].(map[string]any)
		if freq["interval_unit"] != "DAY" || freq["interval_count"] != float64(30) {
			t.Fatalf("unexpected frequency: %v", freq)
		}
		if cycle["tenure_type"] != "REGULAR" || cycle["total_cycles"] != float64(0) {
			t.Fatalf("unexpected cycle: %v", cycle)
		}
		fixed := cycle["pricing_scheme"].(map[string]any)["fixed_price"].(map[string]any)
		if fixed["value"] != "9.99" || fixed["currency_code"] != "USD" {
			t.Fatalf("unexpected fixed price: %v", fixed)
		}
		prefs := raw["payment_preferences"].(map[string]any)
		if prefs["auto_bill_outstanding"] != true || prefs["payment_failure_threshold"] != float64(3) {
			t.Fatalf("unexpected payment preferences: %v", prefs)
		}
		if _, ok := prefs["setup_fee"]; ok {
			t.Fatalf("setup_fee must be omitted when zero")
		}
	})

	t.Run("with setup fee", func(t *testing.T) {
		fake := newFakePayPal(t)
		var raw map[string]any
		fake.handle("POST /billing/plans", func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
				t.Fatalf("decoding plan request: %v", err)
			}
			w.Write([]byte(`{"id":"P-2"}`))
		})

		_, err := fake.client().CreatePlan(context.Background(), entities.PlanSpec{
			ProductID:    "PROD-1",
			Name:         "Gold",
			IntervalDays: 30,
			Price:        9.99,
			SetupFee:     4.5,
			Currency:     "USD",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		prefs := raw["payment_preferences"].(map[string]any)
		fee := prefs["setup_fee"].(map[string]any)
		if fee["value"] != "4.50" || fee["currency_code"] != "USD" {
			t.Fatalf("unexpected setup fee: %v", fee)
		}
		if prefs["setup_fee_failure_action"] != "CONTINUE" {
			t.Fatalf("unexpected setup fee failure action: %v", prefs["setup_fee_failure_action"])
		}
	})
}

func TestClient_CreateSubscription(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("POST /billing/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decoding subscription request: %v", err)
		}
		if raw["plan_id"] != "P-1" || raw["custom_id"] != "pay-1" {
			t.Fatalf("unexpected subscription request: %v", raw)
		}
		appCtx := raw["application_context"].(map[string]any)
		if appCtx["return_url"] != "https://panel.example.com/payment/success/pay-1" ||
			appCtx["cancel_url"] != "https://panel.example.com/payment/cancel/pay-1" {
			t.Fatalf("unexpected application context: %v", appCtx)
		}
		w.Write([]byte(`{
			"id": "I-SUB1",
			"status": "APPROVAL_PENDING",
			"links": [
				{"href": "https://api.example.com/self", "rel": "self"},
				{"href": "https://www.example.com/approve", "rel": "approve"}
			]
		}`))
	})

	session, err := fake.client().CreateSubscription(context.Background(), "P-1", "pay-1",
		"https://panel.example.com/payment/success/pay-1",
		"https://panel.example.com/payment/cancel/pay-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.ID != "I-SUB1" {
		t.Fatalf("expected I-SUB1, got %q", session.ID)
	}
	if session.ApproveLink() != "https://www.example.com/approve" {
		t.Fatalf("unexpected approve link: %q", session.ApproveLink())
	}
}

func TestClient_GetSubscriptionStatus(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("GET /billing/subscriptions/I-SUB1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"I-SUB1","status":"ACTIVE"}`))
	})

	status, err := fake.client().GetSubscriptionStatus(context.Background(), "I-SUB1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %q", status)
	}
}

func TestClient_CreateWebhook(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("POST /notifications/webhooks", func(w http.ResponseWriter, r *http.Request) {
		var raw webhookRequest
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decoding webhook request: %v", err)
		}
		if raw.URL != "https://panel.example.com/payment/return/paypal_subscriptions_gateway" {
			t.Fatalf("unexpected callback url: %q", raw.URL)
		}
		if len(raw.EventTypes) != len(entities.WebhookEventTypes()) {
			t.Fatalf("expected %d event types, got %d", len(entities.WebhookEventTypes()), len(raw.EventTypes))
		}
		w.Write([]byte(`{"id":"WH-1"}`))
	})

	id, err := fake.client().CreateWebhook(context.Background(),
		"https://panel.example.com/payment/return/paypal_subscriptions_gateway",
		entities.WebhookEventTypes())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "WH-1" {
		t.Fatalf("expected WH-1, got %q", id)
	}
}

func TestClient_VerifyWebhookSignature(t *testing.T) {
	verification := entities.WebhookVerification{
		AuthAlgo:        "SHA256withRSA",
		TransmissionID:  "tx-1",
		TransmissionSig: "sig-1",
		WebhookID:       "WH-1",
		WebhookEvent:    json.RawMessage(`{"event_type":"BILLING.SUBSCRIPTION.ACTIVATED"}`),
	}

	t.Run("success", func(t *testing.T) {
		fake := newFakePayPal(t)
		fake.handle("POST /notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
			var raw map[string]any
			if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
				t.Fatalf("decoding verification request: %v", err)
			}
			if raw["webhook_id"] != "WH-1" || raw["transmission_sig"] != "sig-1" {
				t.Fatalf("unexpected verification request: %v", raw)
			}
			w.Write([]byte(`{"verification_status":"SUCCESS"}`))
		})

		ok, err := fake.client().VerifyWebhookSignature(context.Background(), verification)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ok {
			t.Fatalf("expected verification to pass")
		}
	})

	t.Run("failure", func(t *testing.T) {
		fake := newFakePayPal(t)
		fake.handle("POST /notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"verification_status":"FAILURE"}`))
		})

		ok, err := fake.client().VerifyWebhookSignature(context.Background(), verification)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Fatalf("expected verification to fail")
		}
	})
}

func TestClient_Non2xxResponse(t *testing.T) {
	fake := newFakePayPal(t)
	fake.handle("POST /catalogs/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY"}`))
	})

	_, err := fake.client().CreateProduct(context.Background(), "Gold")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 422") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{9.99, "9.99"},
		{10, "10.00"},
		{4.5, "4.50"},
		{0.1, "0.10"},
	}
	for _, c := range cases {
		if got := formatAmount(c.in); got != c.want {
			t.Fatalf("formatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
