package entities

// Severity classifies a notification emitted for a terminal charge state.

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// GoCardlessChargeRequest is the outgoing GoCardless payment payload.
//
// Field names and nesting are bit-exact contract requirements. The charge
// date is accepted on the billing record but intentionally not transmitted;
// the gateway defaults it server-side.
type GoCardlessChargeRequest struct {
	Payments GoCardlessPayment `json:"payments"`
}

type GoCardlessPayment struct {
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	Description     *string         `json:"description"`
	RetryIfPossible bool            `json:"retry_if_possible"`
	Links           GoCardlessLinks `json:"links"`
}

type GoCardlessLinks struct {
	Mandate string `json:"mandate"`
}

// BraintreeChargeRequest is the outgoing Braintree charge payload. The amount
// stays in major currency units; Braintree expects a decimal.
type BraintreeChargeRequest struct {
	CurrentToken string  `json:"currentToken"`
	Amount       float64 `json:"amount"`
	AccountID    string  `json:"accountId"`
	BillingID    string  `json:"billingId"`
}

// StripeChargeRequest is the outgoing Stripe charge payload, amount in minor
// units with a lowercase currency code.
type StripeChargeRequest struct {
	Amount       int64  `json:"amount"`
	CurrencyType string `json:"currencyType"`
	CustomerID   string `json:"customerId"`
	BillingID    string `json:"billingId"`
	AccountID    string `json:"accountId"`
}

// TransactionOutcome is the canonical result of one charge attempt,
// regardless of which gateway produced it. It is aggregated and notified,
// never persisted here.
type TransactionOutcome struct {
	Succeeded     bool   `json:"succeeded"`
	TransactionID string `json:"transaction_id,omitempty"`
	Headline      string `json:"headline"`
	Detail        string `json:"detail"`
}

// Severity maps the outcome onto the notification severity used for it.
func (o TransactionOutcome) Severity() Severity {
	if o.Succeeded {
		return SeveritySuccess
	}
	return SeverityError
}
