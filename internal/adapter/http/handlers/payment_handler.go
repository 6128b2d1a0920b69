package handlers

import (
	"errors"
	"log"
	"net/http"

	response "paypal_subscriptions/internal/adapter/http/dto/response"
	"paypal_subscriptions/internal/gateway"
	"paypal_subscriptions/internal/usecase"
	"paypal_subscriptions/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout-side HTTP requests: provisioning a
// subscription redirect for a payment, the subscription status check,
// and the gateway catalog for the host admin UI.

type PaymentHandler struct {
	registry *gateway.Registry
}

func NewPaymentHandler(registry *gateway.Registry) *PaymentHandler {
	return &PaymentHandler{registry: registry}
}

// ProcessPayment provisions a remote subscription for the payment and
// returns the approval redirect target.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	endpoint := c.Param("gateway")
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] process start gateway=%s payment_id=%s", endpoint, paymentID)

	driver, ok := h.registry.Lookup(endpoint)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	redirectURL, err := driver.Provision(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] process failed gateway=%s payment_id=%s err=%v", endpoint, paymentID, err)
		appErr := mapProvisionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success gateway=%s payment_id=%s", endpoint, paymentID)

	c.JSON(http.StatusOK, response.NewCheckoutResponse(paymentID, redirectURL))
}

// CheckSubscription reports whether the remote subscription is active.
func (h *PaymentHandler) CheckSubscription(c *gin.Context) {
	endpoint := c.Param("gateway")
	subscriptionID := c.Param("subscription_id")

	driver, ok := h.registry.Lookup(endpoint)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	active, err := driver.CheckStatus(c.Request.Context(), subscriptionID)
	if err != nil {
		log.Printf("[payment][handler] status check failed gateway=%s subscription_id=%s err=%v", endpoint, subscriptionID, err)
		appErr := pkg.NewDomainError("SUBSCRIPTION_CHECK_FAILED", "Unable to check subscription status", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubscriptionStatusResponse{
		SubscriptionID: subscriptionID,
		Active:         active,
	})
}

// ListGateways returns the registered driver descriptors and their
// admin configuration schemas.
func (h *PaymentHandler) ListGateways(c *gin.Context) {
	drivers := h.registry.All()
	out := make([]response.GatewayResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, response.FromDriver(d))
	}
	c.JSON(http.StatusOK, out)
}

func mapProvisionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Price not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanCreationFailed):
		return pkg.NewDomainErrorSimple("PLAN_CREATION_FAILED", "Unable to provision billing plan", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSubscriptionCreateFailed):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_CREATE_FAILED", "Unable to create subscription", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNoApprovalLink):
		return pkg.NewDomainErrorSimple("NO_APPROVAL_LINK", "No approval link found", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
