package paypal

import "paypal_subscriptions/internal/domain/entities"

// Request/response shapes for the PayPal REST v1 endpoints the gateway
// uses. Only the fields the gateway reads or writes are modeled.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type productRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

type productResponse struct {
	ID string `json:"id"`
}

type frequency struct {
	IntervalUnit  string `json:"interval_unit"`
	IntervalCount int    `json:"interval_count"`
}

type money struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currency_code"`
}

type pricingScheme struct {
	FixedPrice money `json:"fixed_price"`
}

type billingCycle struct {
	Frequency     frequency     `json:"frequency"`
	TenureType    string        `json:"tenure_type"`
	Sequence      int           `json:"sequence"`
	TotalCycles   int           `json:"total_cycles"`
	PricingScheme pricingScheme `json:"pricing_scheme"`
}

type paymentPreferences struct {
	AutoBillOutstanding     bool   `json:"auto_bill_outstanding"`
	SetupFee                *money `json:"setup_fee,omitempty"`
	SetupFeeFailureAction   string `json:"setup_fee_failure_action,omitempty"`
	PaymentFailureThreshold int    `json:"payment_failure_threshold"`
}

type planRequest struct {
	ProductID          string             `json:"product_id"`
	Name               string             `json:"name"`
	BillingCycles      []billingCycle     `json:"billing_cycles"`
	PaymentPreferences paymentPreferences `json:"payment_preferences"`
}

type planResponse struct {
	ID string `json:"id"`
}

type applicationContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type subscriptionRequest struct {
	PlanID             string             `json:"plan_id"`
	CustomID           string             `json:"custom_id"`
	ApplicationContext applicationContext `json:"application_context"`
}

type subscriptionResponse struct {
	ID     string                      `json:"id"`
	Status string                      `json:"status"`
	Links  []entities.SubscriptionLink `json:"links"`
}

type webhookEventType struct {
	Name string `json:"name"`
}

type webhookRequest struct {
	URL        string             `json:"url"`
	EventTypes []webhookEventType `json:"event_types"`
}

type webhookResponse struct {
	ID string `json:"id"`
}

type verifyResponse struct {
	VerificationStatus string `json:"verification_status"`
}
