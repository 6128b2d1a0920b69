package entities

import "time"

// Price is a local billing price attached to a Package.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Data is an opaque key/value bag. Once a remote billing plan has been
// created for this price in a given gateway mode, its id is memoized
// there under GatewayMode.PlanDataKey(), which makes plan provisioning
// idempotent per (price, mode).

type Price struct {
	ID           string            `json:"id"`
	PackageID    string            `json:"package_id"`
	Period       int               `json:"period"` // billing interval in days
	RenewalPrice float64           `json:"renewal_price"`
	SetupFee     float64           `json:"setup_fee"`
	Currency     string            `json:"currency"`
	Data         map[string]string `json:"data,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// PlanID returns the memoized plan id for the mode, if any.
func (p Price) PlanID(mode GatewayMode) string {
	if p.Data == nil {
		return ""
	}
	return p.Data[mode.PlanDataKey()]
}

// Package is the catalog entry a price belongs to. Its name becomes the
// remote product name during provisioning.
//
// Storage model (DynamoDB):
//   - PK: id

type Package struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
