package usecase

import (
	"errors"

	"renewal_automation/internal/domain/entities"
)

var (
	ErrPaymentPending        = errors.New("The payment is in pending process.")
	ErrPaymentAlreadyCharged = errors.New("The payment is already charged.")
	ErrMissingMandate        = errors.New("Mandate ID is required for GoCardLess gateway.")
	ErrMissingCardToken      = errors.New("Payment Token is required for Braintree gateway.")
	ErrMissingCustomerID     = errors.New("A valid customer ID is required for Stripe gateway.")
	ErrUnknownGateway        = errors.New("The payment gateway for this billing is unknown.")
)

// ValidateChargeable decides whether a billing record is eligible for a
// charge attempt. It returns nil when eligible and one of the sentinel
// reasons above when not.
//
// Pending and Successful are rejected unconditionally (a pending charge must
// never be re-attempted; Successful is the double-charge guard). Chargeable
// statuses additionally require the credential matching the assigned gateway.
// Any other status passes through without explicit handling.
func ValidateChargeable(rec entities.BillingRecord) error {
	switch rec.PaymentStatus {
	case entities.PaymentStatusPending:
		return ErrPaymentPending
	case entities.PaymentStatusSuccessful:
		return ErrPaymentAlreadyCharged
	case entities.PaymentStatusUncharged, entities.PaymentStatusUnsuccessful:
		switch rec.PaymentGateway {
		case entities.GatewayGoCardless:
			if rec.MandateID == "" {
				return ErrMissingMandate
			}
		case entities.GatewayBraintree, entities.GatewayBraintreeAndStripe:
			if rec.CardToken == "" {
				return ErrMissingCardToken
			}
		case entities.GatewayStripe:
			if rec.StripeCustomerID == "" {
				return ErrMissingCustomerID
			}
		case entities.GatewayUnknown:
			return ErrUnknownGateway
		}
	}
	return nil
}
