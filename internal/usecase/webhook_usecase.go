package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookPayload     = errors.New("invalid webhook payload")
	ErrWebhookVerificationFailed = errors.New("webhook verification failed")
)

// IWebhookUseCase verifies and dispatches inbound provider events.

type IWebhookUseCase interface {
	HandleEvent(ctx context.Context, headers entities.WebhookHeaders, rawBody []byte) error
}

// WebhookUseCase is the trust boundary of the module. No inbound claim
// is acted on before the provider confirms the delivery signature, and
// every verified well-formed delivery is acknowledged even when nothing
// changes locally: the provider treats non-2xx as failure and redelivers
// with backoff.

type WebhookUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	registrar   interfaces.IWebhookRegistrar
	paypal      interfaces.IPayPalGateway
	notifier    interfaces.INotifier
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	paymentRepo interfaces.IPaymentRepository,
	registrar interfaces.IWebhookRegistrar,
	paypal interfaces.IPayPalGateway,
	notifier interfaces.INotifier,
) *WebhookUseCase {
	return &WebhookUseCase{
		paymentRepo: paymentRepo,
		registrar:   registrar,
		paypal:      paypal,
		notifier:    notifier,
	}
}

func (u *WebhookUseCase) HandleEvent(ctx context.Context, headers entities.WebhookHeaders, rawBody []byte) error {
	var event entities.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("[webhook][usecase] body unmarshal failed err=%v", err)
		return ErrInvalidWebhookPayload
	}
	if event.EventType == "" {
		log.Printf("[webhook][usecase] missing event_type")
		return ErrInvalidWebhookPayload
	}
	log.Printf("[webhook][usecase] event received event_type=%s resource_id=%s custom_id=%s", event.EventType, event.Resource.ID, event.Resource.CustomID)

	if !u.verify(ctx, headers, rawBody) {
		log.Printf("[webhook][usecase] verification failed event_type=%s transmission_id=%s", event.EventType, headers.TransmissionID)
		return ErrWebhookVerificationFailed
	}

	switch event.EventType {
	case entities.EventSubscriptionActivated:
		return u.handleActivated(ctx, event)
	case entities.EventSubscriptionCancelled:
		// Hook point for future dunning logic; no local transition yet.
		log.Printf("[webhook][usecase] subscription cancelled subscription_id=%s custom_id=%s", event.Resource.ID, event.Resource.CustomID)
		return nil
	default:
		log.Printf("[webhook][usecase] event acknowledged without action event_type=%s", event.EventType)
		return nil
	}
}

func (u *WebhookUseCase) handleActivated(ctx context.Context, event entities.WebhookEvent) error {
	customID := event.Resource.CustomID
	if customID == "" {
		log.Printf("[webhook][usecase] activation without custom_id subscription_id=%s", event.Resource.ID)
		return nil
	}

	payment, err := u.paymentRepo.GetByID(ctx, customID)
	if err != nil {
		log.Printf("[webhook][usecase] failed loading payment custom_id=%s err=%v", customID, err)
		return err
	}
	if payment.ID == "" {
		log.Printf("[webhook][usecase] no payment for custom_id=%s", customID)
		return nil
	}
	if payment.Status == entities.PaymentStatusCompleted {
		log.Printf("[webhook][usecase] payment already completed payment_id=%s", payment.ID)
		return nil
	}

	completed, err := u.paymentRepo.MarkCompleted(ctx, payment.ID, event.Resource.ID)
	if err != nil {
		log.Printf("[webhook][usecase] failed completing payment payment_id=%s err=%v", payment.ID, err)
		return err
	}
	log.Printf("[webhook][usecase] subscription activated payment_id=%s subscription_id=%s", completed.ID, event.Resource.ID)

	if u.notifier != nil {
		if err := u.notifier.SubscriptionActivated(ctx, completed); err != nil {
			// The payment is already completed; a lost notification is
			// not worth a provider redelivery of the whole event.
			log.Printf("[webhook][usecase] activation notification failed payment_id=%s err=%v", completed.ID, err)
		}
	}
	return nil
}

// verify builds the verification payload from the transmission headers,
// the currently registered webhook id, and the raw inbound body, and
// asks the provider to confirm the signature. Any failure along the way
// means the event is untrusted.
func (u *WebhookUseCase) verify(ctx context.Context, headers entities.WebhookHeaders, rawBody []byte) bool {
	webhookID, err := u.registrar.EnsureWebhookID(ctx)
	if err != nil || webhookID == "" {
		log.Printf("[webhook][usecase] no webhook id available for verification err=%v", err)
		return false
	}

	ok, err := u.paypal.VerifyWebhookSignature(ctx, entities.WebhookVerification{
		AuthAlgo:         headers.AuthAlgo,
		CertURL:          headers.CertURL,
		TransmissionID:   headers.TransmissionID,
		TransmissionSig:  headers.TransmissionSig,
		TransmissionTime: headers.TransmissionTime,
		WebhookID:        webhookID,
		WebhookEvent:     json.RawMessage(rawBody),
	})
	if err != nil {
		log.Printf("[webhook][usecase] verification call failed err=%v", err)
		return false
	}
	return ok
}
