package handlers

import (
	"errors"
	"log"
	"net/http"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/gateway"
	"paypal_subscriptions/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous provider callbacks on
// POST /payment/return/:gateway and routes them to the matching driver.
//
// Response bodies follow the provider contract exactly: the provider
// treats any non-2xx as a failed delivery and redelivers with backoff,
// so verified no-ops still answer 200 {"status":"ok"}.

type WebhookHandler struct {
	registry *gateway.Registry
}

func NewWebhookHandler(registry *gateway.Registry) *WebhookHandler {
	return &WebhookHandler{registry: registry}
}

// HandleReturn processes a gateway callback.
func (h *WebhookHandler) HandleReturn(c *gin.Context) {
	endpoint := c.Param("gateway")
	driver, ok := h.registry.Lookup(endpoint)
	if !ok {
		log.Printf("[webhook][handler] unknown gateway endpoint=%s", endpoint)
		c.JSON(http.StatusNotFound, gin.H{"status": "unknown gateway"})
		return
	}

	rawBody, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed endpoint=%s err=%v", endpoint, err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "Invalid Response"})
		return
	}

	headers := entities.WebhookHeaders{
		AuthAlgo:         c.GetHeader("PAYPAL-AUTH-ALGO"),
		CertURL:          c.GetHeader("PAYPAL-CERT-URL"),
		TransmissionID:   c.GetHeader("PAYPAL-TRANSMISSION-ID"),
		TransmissionSig:  c.GetHeader("PAYPAL-TRANSMISSION-SIG"),
		TransmissionTime: c.GetHeader("PAYPAL-TRANSMISSION-TIME"),
	}

	err = driver.HandleCallback(c.Request.Context(), headers, rawBody)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		log.Printf("[webhook][handler] invalid payload endpoint=%s transmission_id=%s", endpoint, headers.TransmissionID)
		c.JSON(http.StatusBadRequest, gin.H{"status": "Invalid Response"})
	case errors.Is(err, usecase.ErrWebhookVerificationFailed):
		log.Printf("[webhook][handler] verification failed endpoint=%s transmission_id=%s", endpoint, headers.TransmissionID)
		c.JSON(http.StatusBadRequest, gin.H{"status": "verification_failed"})
	default:
		// Internal failure (storage, notifier wiring): answer 5xx so
		// the provider redelivers once we recover.
		log.Printf("[webhook][handler] processing failed endpoint=%s err=%v", endpoint, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
	}
}
