package usecase

import (
	"context"
	"errors"
	"testing"

	"paypal_subscriptions/internal/domain/entities"
	mock_interfaces "paypal_subscriptions/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testCallbackURL = "https://panel.example.com/payment/return/paypal_subscriptions_gateway"

func TestWebhookRegistrarUseCase_EnsureWebhookID_StoredID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
	uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeSandbox, testCallbackURL)

	settings.EXPECT().Get(gomock.Any(), "paypal_sandbox_webhook_id").Return("WH-STORED", nil)

	id, err := uc.EnsureWebhookID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "WH-STORED" {
		t.Fatalf("expected WH-STORED, got %q", id)
	}
}

func TestWebhookRegistrarUseCase_EnsureWebhookID_RegistersAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
	uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeLive, testCallbackURL)

	settings.EXPECT().Get(gomock.Any(), "paypal_webhook_id").Return("", nil)
	paypal.EXPECT().CreateWebhook(gomock.Any(), testCallbackURL, entities.WebhookEventTypes()).Return("WH-NEW", nil)
	settings.EXPECT().Put(gomock.Any(), "paypal_webhook_id", "WH-NEW").Return(nil)

	id, err := uc.EnsureWebhookID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "WH-NEW" {
		t.Fatalf("expected WH-NEW, got %q", id)
	}
}

func TestWebhookRegistrarUseCase_EnsureWebhookID_SecondAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
	uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeSandbox, testCallbackURL)

	settings.EXPECT().Get(gomock.Any(), "paypal_sandbox_webhook_id").Return("", nil).Times(2)
	gomock.InOrder(
		paypal.EXPECT().CreateWebhook(gomock.Any(), testCallbackURL, gomock.Any()).Return("", errors.New("429")),
		paypal.EXPECT().CreateWebhook(gomock.Any(), testCallbackURL, gomock.Any()).Return("WH-RETRY", nil),
	)
	settings.EXPECT().Put(gomock.Any(), "paypal_sandbox_webhook_id", "WH-RETRY").Return(nil)

	id, err := uc.EnsureWebhookID(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "WH-RETRY" {
		t.Fatalf("expected WH-RETRY, got %q", id)
	}
}

func TestWebhookRegistrarUseCase_EnsureWebhookID_AttemptsExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock_interfaces.NewMockISettingsStore(ctrl)
	paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
	uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeSandbox, testCallbackURL)

	settings.EXPECT().Get(gomock.Any(), "paypal_sandbox_webhook_id").Return("", nil).Times(maxRegistrationAttempts)
	paypal.EXPECT().CreateWebhook(gomock.Any(), testCallbackURL, gomock.Any()).Return("", errors.New("down")).Times(maxRegistrationAttempts)

	_, err := uc.EnsureWebhookID(context.Background())
	if !errors.Is(err, ErrWebhookRegistrationFailed) {
		t.Fatalf("expected ErrWebhookRegistrationFailed, got %v", err)
	}
}

func TestWebhookRegistrarUseCase_EnsureWebhookID_SettingsErrors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
		uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeSandbox, testCallbackURL)

		settings.EXPECT().Get(gomock.Any(), "paypal_sandbox_webhook_id").Return("", errors.New("ddb down"))

		if _, err := uc.EnsureWebhookID(context.Background()); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsStore(ctrl)
		paypal := mock_interfaces.NewMockIPayPalGateway(ctrl)
		uc := NewWebhookRegistrarUseCase(settings, paypal, entities.GatewayModeSandbox, testCallbackURL)

		settings.EXPECT().Get(gomock.Any(), "paypal_sandbox_webhook_id").Return("", nil)
		paypal.EXPECT().CreateWebhook(gomock.Any(), testCallbackURL, gomock.Any()).Return("WH-1", nil)
		settings.EXPECT().Put(gomock.Any(), "paypal_sandbox_webhook_id", "WH-1").Return(errors.New("ddb down"))

		if _, err := uc.EnsureWebhookID(context.Background()); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}
