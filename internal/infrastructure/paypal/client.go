// Package paypal is a thin client for the PayPal REST v1 API, covering
// catalog products, billing plans, subscriptions, and webhook
// registration/verification.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

const (
	productType     = "SERVICE"
	productCategory = "SOFTWARE"

	// Three failed renewal attempts suspend the subscription on the
	// provider side.
	paymentFailureThreshold = 3
)

// Client talks to the PayPal environment selected by the gateway mode.
// It owns the access-token cache; see token.go.

type Client struct {
	cfg        entities.GatewayConfig
	baseURL    string
	httpClient *http.Client
	tokens     *lru.LRU[string, string]
}

var _ interfaces.IPayPalGateway = (*Client)(nil)

func NewClient(cfg entities.GatewayConfig) *Client {
	return NewClientWithBaseURL(cfg, cfg.Mode.BaseURL())
}

// NewClientWithBaseURL overrides the mode-derived base URL. Used by
// tests that point the client at a local fake.
func NewClientWithBaseURL(cfg entities.GatewayConfig, baseURL string) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: lru.NewLRU[string, string](1, nil, tokenTTL),
	}
}

func (c *Client) CreateProduct(ctx context.Context, name string) (string, error) {
	var resp productResponse
	err := c.postJSON(ctx, "/catalogs/products", productRequest{
		Name:     name,
		Type:     productType,
		Category: productCategory,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) CreatePlan(ctx context.Context, spec entities.PlanSpec) (string, error) {
	req := planRequest{
		ProductID: spec.ProductID,
		Name:      spec.Name,
		BillingCycles: []billingCycle{
			{
				Frequency: frequency{
					IntervalUnit:  "DAY",
					IntervalCount: spec.IntervalDays,
				},
				TenureType:  "REGULAR",
				Sequence:    1,
				TotalCycles: 0, // renew until cancelled
				PricingScheme: pricingScheme{
					FixedPrice: money{
						Value:        formatAmount(spec.Price),
						CurrencyCode: spec.Currency,
					},
				},
			},
		},
		PaymentPreferences: paymentPreferences{
			AutoBillOutstanding:     true,
			PaymentFailureThreshold: paymentFailureThreshold,
		},
	}
	if spec.SetupFee > 0 {
		req.PaymentPreferences.SetupFee = &money{
			Value:        formatAmount(spec.SetupFee),
			CurrencyCode: spec.Currency,
		}
		req.PaymentPreferences.SetupFeeFailureAction = "CONTINUE"
	}

	var resp planResponse
	if err := c.postJSON(ctx, "/billing/plans", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) CreateSubscription(ctx context.Context, planID, customID, returnURL, cancelURL string) (entities.SubscriptionSession, error) {
	var resp subscriptionResponse
	err := c.postJSON(ctx, "/billing/subscriptions", subscriptionRequest{
		PlanID:   planID,
		CustomID: customID,
		ApplicationContext: applicationContext{
			ReturnURL: returnURL,
			CancelURL: cancelURL,
		},
	}, &resp)
	if err != nil {
		return entities.SubscriptionSession{}, err
	}
	return entities.SubscriptionSession{ID: resp.ID, Status: resp.Status, Links: resp.Links}, nil
}

func (c *Client) GetSubscriptionStatus(ctx context.Context, subscriptionID string) (string, error) {
	var resp subscriptionResponse
	if err := c.getJSON(ctx, "/billing/subscriptions/"+subscriptionID, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) CreateWebhook(ctx context.Context, callbackURL string, eventTypes []string) (string, error) {
	req := webhookRequest{URL: callbackURL}
	for _, t := range eventTypes {
		req.EventTypes = append(req.EventTypes, webhookEventType{Name: t})
	}

	var resp webhookResponse
	if err := c.postJSON(ctx, "/notifications/webhooks", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) VerifyWebhookSignature(ctx context.Context, v entities.WebhookVerification) (bool, error) {
	var resp verifyResponse
	if err := c.postJSON(ctx, "/notifications/verify-webhook-signature", v, &resp); err != nil {
		return false, err
	}
	return resp.VerificationStatus == "SUCCESS", nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PayPal-Request-Id", uuid.NewString())

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	token, err := c.accessToken(req.Context())
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[paypal][client] request failed method=%s path=%s err=%v", req.Method, req.URL.Path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[paypal][client] non-2xx response method=%s path=%s status=%d body=%s", req.Method, req.URL.Path, resp.StatusCode, body)
		return fmt.Errorf("paypal: %s %s returned status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
