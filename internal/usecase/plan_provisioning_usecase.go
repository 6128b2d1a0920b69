package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"
)

var (
	ErrPriceNotFound         = errors.New("price not found")
	ErrPackageNotFound       = errors.New("package not found")
	ErrProductCreationFailed = errors.New("product creation failed")
	ErrPlanCreationFailed    = errors.New("plan creation failed")
)

const defaultCurrency = "USD"

// PlanProvisioningUseCase creates the remote product + billing plan a
// subscription is instantiated from.
//
// The plan id is memoized into price.Data under a mode-scoped key, so
// provisioning runs at most once per (price, mode). The memo write must
// land before the id is handed out: a subscription created against a
// plan we failed to record would be re-provisioned on the next attempt.

type PlanProvisioningUseCase struct {
	priceRepo   interfaces.IPriceRepository
	packageRepo interfaces.IPackageRepository
	paypal      interfaces.IPayPalGateway
	mode        entities.GatewayMode
}

var _ interfaces.IPlanProvisioner = (*PlanProvisioningUseCase)(nil)

func NewPlanProvisioningUseCase(
	priceRepo interfaces.IPriceRepository,
	packageRepo interfaces.IPackageRepository,
	paypal interfaces.IPayPalGateway,
	mode entities.GatewayMode,
) *PlanProvisioningUseCase {
	return &PlanProvisioningUseCase{
		priceRepo:   priceRepo,
		packageRepo: packageRepo,
		paypal:      paypal,
		mode:        mode,
	}
}

func (u *PlanProvisioningUseCase) EnsurePlan(ctx context.Context, price entities.Price) (string, error) {
	if planID := price.PlanID(u.mode); planID != "" {
		log.Printf("[provisioning][usecase] plan memo hit price_id=%s mode=%s plan_id=%s", price.ID, u.mode, planID)
		return planID, nil
	}

	pkg, err := u.packageRepo.GetByID(ctx, price.PackageID)
	if err != nil {
		log.Printf("[provisioning][usecase] failed loading package price_id=%s package_id=%s err=%v", price.ID, price.PackageID, err)
		return "", err
	}
	if pkg.ID == "" {
		log.Printf("[provisioning][usecase] package not found price_id=%s package_id=%s", price.ID, price.PackageID)
		return "", ErrPackageNotFound
	}

	productID, err := u.paypal.CreateProduct(ctx, pkg.Name)
	if err != nil {
		log.Printf("[provisioning][usecase] product creation failed price_id=%s package=%q err=%v", price.ID, pkg.Name, err)
		return "", fmt.Errorf("%w: %v", ErrProductCreationFailed, err)
	}
	log.Printf("[provisioning][usecase] product created price_id=%s product_id=%s", price.ID, productID)

	currency := price.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	planID, err := u.paypal.CreatePlan(ctx, entities.PlanSpec{
		ProductID:    productID,
		Name:         pkg.Name,
		IntervalDays: price.Period,
		Price:        price.RenewalPrice,
		SetupFee:     price.SetupFee,
		Currency:     currency,
	})
	if err != nil {
		log.Printf("[provisioning][usecase] plan creation failed price_id=%s product_id=%s err=%v", price.ID, productID, err)
		return "", fmt.Errorf("%w: %v", ErrPlanCreationFailed, err)
	}
	if planID == "" {
		log.Printf("[provisioning][usecase] plan response missing id price_id=%s product_id=%s", price.ID, productID)
		return "", ErrPlanCreationFailed
	}

	key := u.mode.PlanDataKey()
	if _, err := u.priceRepo.SetDataKey(ctx, price.ID, key, planID); err != nil {
		log.Printf("[provisioning][usecase] plan memo write failed price_id=%s key=%s plan_id=%s err=%v", price.ID, key, planID, err)
		return "", err
	}
	log.Printf("[provisioning][usecase] plan provisioned price_id=%s mode=%s plan_id=%s", price.ID, u.mode, planID)

	return planID, nil
}
