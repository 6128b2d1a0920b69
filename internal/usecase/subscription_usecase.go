package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentID         = errors.New("invalid payment id")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrSubscriptionCreateFailed = errors.New("unable to create subscription")
	ErrNoApprovalLink           = errors.New("no approval link found")
)

// ISubscriptionUseCase exposes the checkout-side gateway operations:
// provisioning a remote subscription for a local payment and checking a
// subscription's remote status.

type ISubscriptionUseCase interface {
	CreateSubscription(ctx context.Context, paymentID string) (redirectURL string, err error)
	CheckSubscription(ctx context.Context, subscriptionID string) (bool, error)
}

// SubscriptionUseCase drives the payment flow: webhook registration,
// plan provisioning, subscription creation, approve-link extraction.
//
// Error severity is deliberately uneven. A missing plan is fatal
// (ErrPlanCreationFailed): there is no redirect target to degrade to.
// A rejected subscription or a response without an approve link is a
// user-facing failure the host shows as an error banner.

type SubscriptionUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	priceRepo   interfaces.IPriceRepository
	provisioner interfaces.IPlanProvisioner
	registrar   interfaces.IWebhookRegistrar
	paypal      interfaces.IPayPalGateway
	appURL      string
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(
	paymentRepo interfaces.IPaymentRepository,
	priceRepo interfaces.IPriceRepository,
	provisioner interfaces.IPlanProvisioner,
	registrar interfaces.IWebhookRegistrar,
	paypal interfaces.IPayPalGateway,
	appURL string,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		paymentRepo: paymentRepo,
		priceRepo:   priceRepo,
		provisioner: provisioner,
		registrar:   registrar,
		paypal:      paypal,
		appURL:      strings.TrimRight(appURL, "/"),
	}
}

func (u *SubscriptionUseCase) CreateSubscription(ctx context.Context, paymentID string) (string, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return "", ErrInvalidPaymentID
	}
	log.Printf("[subscription][usecase] create start payment_id=%s", paymentID)

	payment, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[subscription][usecase] failed loading payment payment_id=%s err=%v", paymentID, err)
		return "", err
	}
	if payment.ID == "" {
		log.Printf("[subscription][usecase] payment not found payment_id=%s", paymentID)
		return "", ErrPaymentNotFound
	}

	// Registration failures are logged but do not block checkout; the
	// webhook id only matters once events start arriving, and the next
	// inbound event triggers registration again.
	if _, err := u.registrar.EnsureWebhookID(ctx); err != nil {
		log.Printf("[subscription][usecase] webhook registration unavailable payment_id=%s err=%v", paymentID, err)
	}

	price, err := u.priceRepo.GetByID(ctx, payment.PriceID)
	if err != nil {
		log.Printf("[subscription][usecase] failed loading price payment_id=%s price_id=%s err=%v", paymentID, payment.PriceID, err)
		return "", err
	}
	if price.ID == "" {
		log.Printf("[subscription][usecase] price not found payment_id=%s price_id=%s", paymentID, payment.PriceID)
		return "", ErrPriceNotFound
	}

	planID, err := u.provisioner.EnsurePlan(ctx, price)
	if err != nil || planID == "" {
		log.Printf("[subscription][usecase] plan unavailable payment_id=%s price_id=%s err=%v", paymentID, price.ID, err)
		return "", ErrPlanCreationFailed
	}

	returnURL := fmt.Sprintf("%s/payment/success/%s", u.appURL, payment.ID)
	cancelURL := fmt.Sprintf("%s/payment/cancel/%s", u.appURL, payment.ID)

	session, err := u.paypal.CreateSubscription(ctx, planID, payment.ID, returnURL, cancelURL)
	if err != nil {
		log.Printf("[subscription][usecase] subscription creation failed payment_id=%s plan_id=%s err=%v", paymentID, planID, err)
		return "", ErrSubscriptionCreateFailed
	}
	if len(session.Links) == 0 {
		log.Printf("[subscription][usecase] subscription response has no links payment_id=%s subscription_id=%s", paymentID, session.ID)
		return "", ErrSubscriptionCreateFailed
	}

	approveURL := session.ApproveLink()
	if approveURL == "" {
		log.Printf("[subscription][usecase] no approval link payment_id=%s subscription_id=%s", paymentID, session.ID)
		return "", ErrNoApprovalLink
	}

	log.Printf("[subscription][usecase] create success payment_id=%s subscription_id=%s", paymentID, session.ID)
	return approveURL, nil
}

func (u *SubscriptionUseCase) CheckSubscription(ctx context.Context, subscriptionID string) (bool, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return false, nil
	}

	status, err := u.paypal.GetSubscriptionStatus(ctx, subscriptionID)
	if err != nil {
		log.Printf("[subscription][usecase] status check failed subscription_id=%s err=%v", subscriptionID, err)
		return false, err
	}
	return status == entities.SubscriptionStatusActive, nil
}
