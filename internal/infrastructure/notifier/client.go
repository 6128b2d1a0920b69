// Package notifier posts gateway notifications back to the host panel,
// which owns templating and outbound email delivery.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

type activationPayload struct {
	Event          string `json:"event"`
	PaymentID      string `json:"payment_id"`
	SubscriptionID string `json:"subscription_id"`
	UserEmail      string `json:"user_email"`
	Timestamp      string `json:"timestamp"`
}

// Client implements interfaces.INotifier over the panel's internal
// notification endpoint.

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SubscriptionActivated notifies the panel that a payment completed.
// POST /api/internal/notifications
func (c *Client) SubscriptionActivated(ctx context.Context, payment entities.Payment) error {
	payload := activationPayload{
		Event:          "subscription.activated",
		PaymentID:      payment.ID,
		SubscriptionID: payment.SubscriptionID,
		UserEmail:      payment.UserEmail,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/internal/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[notifier][client] request failed payment_id=%s err=%v", payment.ID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[notifier][client] panel rejected notification payment_id=%s status=%d", payment.ID, resp.StatusCode)
		return fmt.Errorf("notifier: panel returned status %d", resp.StatusCode)
	}
	return nil
}
