// Package gateway holds the payment-gateway driver registry. Drivers
// are registered explicitly at startup and resolved by their endpoint
// key, instead of being looked up through ambient global state.
package gateway

import (
	"context"
	"errors"
	"sort"
	"sync"

	"paypal_subscriptions/internal/domain/entities"
)

var ErrDriverAlreadyRegistered = errors.New("driver already registered")

// Descriptor is the static metadata tuple the host's gateway registry
// consumes.
type Descriptor struct {
	Driver        string `json:"driver"`
	Type          string `json:"type"`
	Endpoint      string `json:"endpoint"`
	RefundSupport bool   `json:"refund_support"`
}

// ConfigField describes one admin-configurable gateway option.
type ConfigField struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Type    string   `json:"type"` // text, password, enum
	Options []string `json:"options,omitempty"`
}

// Driver is the capability surface a payment gateway exposes to the
// host: provision a checkout redirect, handle a provider callback,
// describe its admin configuration, and check a subscription's status.
type Driver interface {
	Descriptor() Descriptor
	DescribeConfig() []ConfigField
	Provision(ctx context.Context, paymentID string) (redirectURL string, err error)
	HandleCallback(ctx context.Context, headers entities.WebhookHeaders, rawBody []byte) error
	CheckStatus(ctx context.Context, subscriptionID string) (bool, error)
}

// Registry maps a gateway endpoint key to its driver.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

func NewRegistry() *Registry {
	return &Registry{drivers: map[string]Driver{}}
}

func (r *Registry) Register(d Driver) error {
	endpoint := d.Descriptor().Endpoint
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.drivers[endpoint]; exists {
		return ErrDriverAlreadyRegistered
	}
	r.drivers[endpoint] = d
	return nil
}

func (r *Registry) Lookup(endpoint string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drivers[endpoint]
	return d, ok
}

// All returns the registered drivers in a stable order.
func (r *Registry) All() []Driver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	endpoints := make([]string, 0, len(r.drivers))
	for endpoint := range r.drivers {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	drivers := make([]Driver, 0, len(endpoints))
	for _, endpoint := range endpoints {
		drivers = append(drivers, r.drivers[endpoint])
	}
	return drivers
}
