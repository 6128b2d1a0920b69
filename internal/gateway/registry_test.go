package gateway

import (
	"context"
	"errors"
	"testing"

	"paypal_subscriptions/internal/domain/entities"
)

type stubDriver struct {
	endpoint string
}

func (s stubDriver) Descriptor() Descriptor {
	return Descriptor{Driver: s.endpoint, Type: "subscription", Endpoint: s.endpoint}
}
func (s stubDriver) DescribeConfig() []ConfigField { return nil }
func (s stubDriver) Provision(context.Context, string) (string, error) {
	return "", nil
}
func (s stubDriver) HandleCallback(context.Context, entities.WebhookHeaders, []byte) error {
	return nil
}
func (s stubDriver) CheckStatus(context.Context, string) (bool, error) {
	return false, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(stubDriver{endpoint: "stub_gateway"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	d, ok := r.Lookup("stub_gateway")
	if !ok {
		t.Fatalf("expected registered driver to resolve")
	}
	if d.Descriptor().Endpoint != "stub_gateway" {
		t.Fatalf("unexpected driver: %+v", d.Descriptor())
	}

	if _, ok := r.Lookup("missing_gateway"); ok {
		t.Fatalf("expected unknown endpoint to miss")
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(stubDriver{endpoint: "stub_gateway"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := r.Register(stubDriver{endpoint: "stub_gateway"}); !errors.Is(err, ErrDriverAlreadyRegistered) {
		t.Fatalf("expected ErrDriverAlreadyRegistered, got %v", err)
	}
}

func TestRegistry_AllStableOrder(t *testing.T) {
	r := NewRegistry()
	for _, endpoint := range []string{"zebra_gateway", "alpha_gateway", "mango_gateway"} {
		if err := r.Register(stubDriver{endpoint: endpoint}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	want := []string{"alpha_gateway", "mango_gateway", "zebra_gateway"}
	drivers := r.All()
	if len(drivers) != len(want) {
		t.Fatalf("expected %d drivers, got %d", len(want), len(drivers))
	}
	for i, d := range drivers {
		if d.Descriptor().Endpoint != want[i] {
			t.Fatalf("unexpected order at %d: got %q, want %q", i, d.Descriptor().Endpoint, want[i])
		}
	}
}

func TestPayPalSubscriptionsDriver_Descriptor(t *testing.T) {
	d := NewPayPalSubscriptionsDriver(nil, nil)

	desc := d.Descriptor()
	if desc.Driver != DriverKey || desc.Endpoint != DriverKey {
		t.Fatalf("unexpected descriptor keys: %+v", desc)
	}
	if desc.Type != "subscription" {
		t.Fatalf("expected subscription type, got %q", desc.Type)
	}
	if desc.RefundSupport {
		t.Fatalf("refunds are not supported for subscription billing")
	}
}

func TestPayPalSubscriptionsDriver_DescribeConfig(t *testing.T) {
	d := NewPayPalSubscriptionsDriver(nil, nil)

	fields := d.DescribeConfig()
	byKey := map[string]ConfigField{}
	for _, f := range fields {
		byKey[f.Key] = f
	}

	if byKey["paypal_client_id"].Type != "text" {
		t.Fatalf("unexpected client id field: %+v", byKey["paypal_client_id"])
	}
	if byKey["paypal_client_secret"].Type != "password" {
		t.Fatalf("client secret must be a password field: %+v", byKey["paypal_client_secret"])
	}
	mode := byKey["paypal_mode"]
	if mode.Type != "enum" || len(mode.Options) != 2 {
		t.Fatalf("unexpected mode field: %+v", mode)
	}
}
