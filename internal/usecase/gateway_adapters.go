package usecase

import (
	"context"
	"encoding/json"
	"math"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase/interfaces"
)

// GatewayAdapter builds the gateway-specific charge payload for one billing
// record and invokes the remote charge through the gateway's transport.
//
// The set of implementations is closed: one per gateway, selected by an
// exhaustive switch in AdapterFor so a new gateway is a compile-time change.
type GatewayAdapter interface {
	Gateway() entities.PaymentGateway
	BuildRequest(rec entities.BillingRecord) (json.RawMessage, error)
	Invoke(ctx context.Context, rec entities.BillingRecord, payload json.RawMessage) (json.RawMessage, error)
}

// GatewayAdapters bundles the three adapters the orchestrator dispatches to.
type GatewayAdapters struct {
	GoCardless GatewayAdapter
	Braintree  GatewayAdapter
	Stripe     GatewayAdapter
}

func NewGatewayAdapters(gocardless, braintree, stripe interfaces.IGatewayTransport) GatewayAdapters {
	return GatewayAdapters{
		GoCardless: &goCardlessAdapter{transport: gocardless},
		Braintree:  &braintreeAdapter{transport: braintree},
		Stripe:     &stripeAdapter{transport: stripe},
	}
}

// AdapterFor selects the adapter charged with a gateway assignment. The dual
// Braintree/Stripe assignment routes to Braintree.
func (a GatewayAdapters) AdapterFor(gateway entities.PaymentGateway) (GatewayAdapter, error) {
	switch gateway {
	case entities.GatewayGoCardless:
		return a.GoCardless, nil
	case entities.GatewayBraintree, entities.GatewayBraintreeAndStripe:
		return a.Braintree, nil
	case entities.GatewayStripe:
		return a.Stripe, nil
	case entities.GatewayUnknown:
		return nil, ErrUnknownGateway
	default:
		return nil, ErrUnknownGateway
	}
}

// minorUnits converts a major-unit balance into integer minor units (x100).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

type goCardlessAdapter struct {
	transport interfaces.IGatewayTransport
}

func (a *goCardlessAdapter) Gateway() entities.PaymentGateway { return entities.GatewayGoCardless }

// BuildRequest nests the mandate under links.mandate and fixes the currency
// to USD. The record's charge date is deliberately not transmitted.
func (a *goCardlessAdapter) BuildRequest(rec entities.BillingRecord) (json.RawMessage, error) {
	req := entities.GoCardlessChargeRequest{
		Payments: entities.GoCardlessPayment{
			Amount:          minorUnits(rec.Balance),
			Currency:        "USD",
			Description:     nil,
			RetryIfPossible: true,
			Links:           entities.GoCardlessLinks{Mandate: rec.MandateID},
		},
	}
	return json.Marshal(req)
}

func (a *goCardlessAdapter) Invoke(ctx context.Context, rec entities.BillingRecord, payload json.RawMessage) (json.RawMessage, error) {
	return a.transport.Charge(ctx, rec.ID, rec.AccountID, payload)
}

type braintreeAdapter struct {
	transport interfaces.IGatewayTransport
}

func (a *braintreeAdapter) Gateway() entities.PaymentGateway { return entities.GatewayBraintree }

// BuildRequest keeps the amount in major units; Braintree expects a decimal.
func (a *braintreeAdapter) BuildRequest(rec entities.BillingRecord) (json.RawMessage, error) {
	req := entities.BraintreeChargeRequest{
		CurrentToken: rec.CardToken,
		Amount:       rec.Balance,
		AccountID:    rec.AccountID,
		BillingID:    rec.ID,
	}
	return json.Marshal(req)
}

func (a *braintreeAdapter) Invoke(ctx context.Context, rec entities.BillingRecord, payload json.RawMessage) (json.RawMessage, error) {
	return a.transport.Charge(ctx, rec.ID, rec.AccountID, payload)
}

type stripeAdapter struct {
	transport interfaces.IGatewayTransport
}

func (a *stripeAdapter) Gateway() entities.PaymentGateway { return entities.GatewayStripe }

func (a *stripeAdapter) BuildRequest(rec entities.BillingRecord) (json.RawMessage, error) {
	req := entities.StripeChargeRequest{
		Amount:       minorUnits(rec.Balance),
		CurrencyType: "usd",
		CustomerID:   rec.StripeCustomerID,
		BillingID:    rec.ID,
		AccountID:    rec.AccountID,
	}
	return json.Marshal(req)
}

func (a *stripeAdapter) Invoke(ctx context.Context, rec entities.BillingRecord, payload json.RawMessage) (json.RawMessage, error) {
	return a.transport.Charge(ctx, rec.ID, rec.AccountID, payload)
}
