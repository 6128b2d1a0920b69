package routes

import (
	"net/http"

	"paypal_subscriptions/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProcess = "/payment/process"
	PathReturn  = "/payment/return"
)

func addPaymentRoutes(r *gin.Engine, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	// Checkout flow: host asks for a redirect target for a payment.
	r.POST(PathProcess+"/:gateway/:payment_id", paymentHandler.ProcessPayment)

	// Provider callback endpoint: payment/return/{gateway-endpoint}.
	r.POST(PathReturn+"/:gateway", webhookHandler.HandleReturn)
}

func addGatewayRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	gateways := rg.Group("/gateways")
	{
		gateways.GET("", paymentHandler.ListGateways)
		gateways.GET("/:gateway/subscriptions/:subscription_id/status", paymentHandler.CheckSubscription)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
