package entities

// PlanSpec is what the provisioner asks PayPal to create a billing
// plan from. One REGULAR infinitely-renewing cycle; the optional
// one-time setup fee is only sent when the price defines one.
type PlanSpec struct {
	ProductID    string
	Name         string
	IntervalDays int
	Price        float64
	SetupFee     float64
	Currency     string
}

// SubscriptionLink is a HATEOAS link returned on subscription creation.
type SubscriptionLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// SubscriptionSession is the provider's answer to a subscription
// creation request. The approve link inside Links is the only way to
// send the end user to checkout.
type SubscriptionSession struct {
	ID     string             `json:"id"`
	Status string             `json:"status"`
	Links  []SubscriptionLink `json:"links"`
}

// ApproveLink scans the links collection for the approve relation.
// Order is not guaranteed by the provider.
func (s SubscriptionSession) ApproveLink() string {
	for _, l := range s.Links {
		if l.Rel == "approve" {
			return l.Href
		}
	}
	return ""
}

// SubscriptionStatusActive is the only remote status that counts as an
// active subscription for checkSubscription purposes.
const SubscriptionStatusActive = "ACTIVE"
