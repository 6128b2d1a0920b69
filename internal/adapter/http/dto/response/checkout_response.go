package response

// CheckoutResponse carries the approval URL the end user must be
// redirected to after a subscription was provisioned.
type CheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	RedirectURL string `json:"redirect_url"`
}

func NewCheckoutResponse(paymentID, redirectURL string) CheckoutResponse {
	return CheckoutResponse{PaymentID: paymentID, RedirectURL: redirectURL}
}
