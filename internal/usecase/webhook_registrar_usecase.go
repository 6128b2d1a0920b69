package usecase

import (
	"context"
	"errors"
	"log"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

var ErrWebhookRegistrationFailed = errors.New("webhook registration failed")

// registration attempts before giving up. A bounded loop, not the
// register-then-recurse pattern: a persistent provider outage must
// surface as ErrWebhookRegistrationFailed instead of unbounded retries.
const maxRegistrationAttempts = 2

// WebhookRegistrarUseCase keeps exactly one webhook registration alive
// per gateway mode. The provider-issued id is persisted in a settings
// slot chosen by mode; re-registration overwrites the prior id and the
// stale remote registration is left behind (harmless for verification,
// which only needs a currently valid id).

type WebhookRegistrarUseCase struct {
	settings    interfaces.ISettingsStore
	paypal      interfaces.IPayPalGateway
	mode        entities.GatewayMode
	callbackURL string
}

var _ interfaces.IWebhookRegistrar = (*WebhookRegistrarUseCase)(nil)

func NewWebhookRegistrarUseCase(
	settings interfaces.ISettingsStore,
	paypal interfaces.IPayPalGateway,
	mode entities.GatewayMode,
	callbackURL string,
) *WebhookRegistrarUseCase {
	return &WebhookRegistrarUseCase{
		settings:    settings,
		paypal:      paypal,
		mode:        mode,
		callbackURL: callbackURL,
	}
}

func (u *WebhookRegistrarUseCase) EnsureWebhookID(ctx context.Context) (string, error) {
	key := u.mode.WebhookSettingKey()

	for attempt := 1; attempt <= maxRegistrationAttempts; attempt++ {
		id, err := u.settings.Get(ctx, key)
		if err != nil {
			log.Printf("[webhook][registrar] settings read failed key=%s err=%v", key, err)
			return "", err
		}
		if id != "" {
			return id, nil
		}

		log.Printf("[webhook][registrar] no webhook id stored, registering key=%s attempt=%d url=%s", key, attempt, u.callbackURL)
		webhookID, err := u.paypal.CreateWebhook(ctx, u.callbackURL, entities.WebhookEventTypes())
		if err != nil {
			log.Printf("[webhook][registrar] registration failed attempt=%d err=%v", attempt, err)
			continue
		}
		if webhookID == "" {
			log.Printf("[webhook][registrar] registration response missing id attempt=%d", attempt)
			continue
		}

		if err := u.settings.Put(ctx, key, webhookID); err != nil {
			log.Printf("[webhook][registrar] settings write failed key=%s webhook_id=%s err=%v", key, webhookID, err)
			return "", err
		}
		log.Printf("[webhook][registrar] webhook registered key=%s webhook_id=%s", key, webhookID)
		return webhookID, nil
	}

	return "", ErrWebhookRegistrationFailed
}
