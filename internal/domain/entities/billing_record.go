package entities

import "time"

// PaymentGateway identifies the external processor assigned to a billing.
//
// The string values are contract values carried by the backing store; the
// dual "Braintree and Stripe" assignment charges through Braintree.

type PaymentGateway string

const (
	GatewayGoCardless         PaymentGateway = "GoCardLess"
	GatewayBraintree          PaymentGateway = "Braintree"
	GatewayStripe             PaymentGateway = "Stripe"
	GatewayBraintreeAndStripe PaymentGateway = "Braintree and Stripe"
	GatewayUnknown            PaymentGateway = "Unknown"
)

// PaymentStatus represents the charge lifecycle of a renewal billing.
//
// Only Uncharged and Unsuccessful are chargeable; Pending and Successful are
// absorbing for this service (never re-entered into a batch).

type PaymentStatus string

const (
	PaymentStatusUncharged    PaymentStatus = "Uncharged"
	PaymentStatusUnsuccessful PaymentStatus = "Unsuccessful"
	PaymentStatusPending      PaymentStatus = "Pending"
	PaymentStatusSuccessful   PaymentStatus = "Successful"
)

// IsChargeable reports whether a new charge attempt may target this status.
func (s PaymentStatus) IsChargeable() bool {
	return s == PaymentStatusUncharged || s == PaymentStatusUnsuccessful
}

// BillingRecord is an immutable snapshot of a subscription-renewal billing.
//
// Storage model (DynamoDB, renewal_billings table):
//   - PK: id
//
// Gateway credentials:
//   - MandateID: GoCardless direct-debit mandate.
//   - CardToken: Braintree vaulted payment-method token.
//   - StripeCustomerID: Stripe customer reference.
//     A dual Braintree/Stripe record may legitimately carry both CardToken
//     and StripeCustomerID.
//
// The service never mutates a record; authoritative status updates happen in
// the backing store and are observed through a re-fetch.

type BillingRecord struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	AccountID         string         `json:"account_id"`
	CustomerName      string         `json:"customer_name"`
	BillingDate       time.Time      `json:"billing_date"`
	SubscriptionType  string         `json:"subscription_type"`
	Total             float64        `json:"total"`
	Balance           float64        `json:"balance"`
	PaymentStatus     PaymentStatus  `json:"payment_status"`
	PaymentGateway    PaymentGateway `json:"payment_gateway"`
	ProcessorResponse string         `json:"processor_response,omitempty"`

	MandateID        string `json:"mandate_id,omitempty"`
	ChargeDate       string `json:"charge_date,omitempty"`
	CardToken        string `json:"card_token,omitempty"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}
