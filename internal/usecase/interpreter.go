package usecase

import (
	"encoding/json"
	"errors"
	"fmt"

	"renewal_automation/internal/domain/entities"
)

var (
	ErrEmptyGatewayResponse     = errors.New("gateway response is required")
	ErrAmbiguousGatewayResponse = errors.New("gateway response carries neither a payment nor an error")
	ErrUnsupportedGateway       = errors.New("unsupported payment gateway")
)

// braintreeResponse mirrors the GraphQL chargePaymentMethod envelope. A
// top-level errors array overrides the nested transaction status.
type braintreeResponse struct {
	Data struct {
		ChargePaymentMethod struct {
			Transaction struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"transaction"`
		} `json:"chargePaymentMethod"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// goCardlessResponse is discriminated by which top-level object is present:
// payments on success, error on failure.
type goCardlessResponse struct {
	Payments *struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		ChargeDate string `json:"charge_date"`
	} `json:"payments"`
	Error *struct {
		Code   int `json:"code"`
		Errors []struct {
			Reason  string `json:"reason"`
			Message string `json:"message"`
			Field   string `json:"field"`
		} `json:"errors"`
	} `json:"error"`
}

type stripeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Message string `json:"message"`
		Param   string `json:"param"`
	} `json:"error"`
}

const braintreeSubmittedForSettlement = "SUBMITTED_FOR_SETTLEMENT"

// InterpretOutcome converts a raw gateway response into the canonical
// transaction outcome. It errors only on structurally invalid input; a
// well-formed business failure becomes a non-succeeded outcome.
func InterpretOutcome(gateway entities.PaymentGateway, raw json.RawMessage) (entities.TransactionOutcome, error) {
	if len(raw) == 0 {
		return entities.TransactionOutcome{}, ErrEmptyGatewayResponse
	}

	switch gateway {
	case entities.GatewayBraintree, entities.GatewayBraintreeAndStripe:
		return interpretBraintree(raw)
	case entities.GatewayGoCardless:
		return interpretGoCardless(raw)
	case entities.GatewayStripe:
		return interpretStripe(raw)
	case entities.GatewayUnknown:
		return entities.TransactionOutcome{}, ErrUnsupportedGateway
	default:
		return entities.TransactionOutcome{}, ErrUnsupportedGateway
	}
}

func interpretBraintree(raw json.RawMessage) (entities.TransactionOutcome, error) {
	var resp braintreeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.TransactionOutcome{}, err
	}

	txn := resp.Data.ChargePaymentMethod.Transaction
	var out entities.TransactionOutcome
	if txn.Status == braintreeSubmittedForSettlement {
		out = entities.TransactionOutcome{
			Succeeded:     true,
			TransactionID: txn.ID,
			Headline:      "Braintree transaction processed successfully",
			Detail:        fmt.Sprintf("Status: %s", txn.Status),
		}
	} else {
		out = entities.TransactionOutcome{
			Headline: "Failed to process Braintree transaction",
			Detail:   txn.Status,
		}
	}

	// Gateway errors take priority over the nested status, even when that
	// status still reports settlement. A settled transaction keeps its id so
	// the attempt still counts as an identified business failure.
	if len(resp.Errors) > 0 {
		out.Succeeded = false
		out.Headline = "Failed to process Braintree transaction"
		out.Detail = resp.Errors[0].Message
	}
	return out, nil
}

func interpretGoCardless(raw json.RawMessage) (entities.TransactionOutcome, error) {
	var resp goCardlessResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.TransactionOutcome{}, err
	}

	switch {
	case resp.Payments != nil && resp.Error == nil:
		return entities.TransactionOutcome{
			Succeeded:     true,
			TransactionID: resp.Payments.ID,
			Headline:      "GoCardLess transaction processed successfully",
			Detail:        fmt.Sprintf("Status: %s and Charge date: %s", resp.Payments.Status, resp.Payments.ChargeDate),
		}, nil
	case resp.Error != nil && resp.Payments == nil:
		out := entities.TransactionOutcome{Headline: "Failed to process GoCardLess transaction"}
		for _, e := range resp.Error.Errors {
			reasonOrField := e.Reason
			if reasonOrField == "" {
				reasonOrField = e.Field
			}
			out.Headline = fmt.Sprintf("Error: %s.", e.Message)
			out.Detail = fmt.Sprintf("Status Code: %d Reason or Field: %s", resp.Error.Code, reasonOrField)
		}
		return out, nil
	default:
		// Upstream leaves this case undefined; treating it as a hard input
		// error keeps it inside the per-record failure boundary.
		return entities.TransactionOutcome{}, ErrAmbiguousGatewayResponse
	}
}

func interpretStripe(raw json.RawMessage) (entities.TransactionOutcome, error) {
	var resp stripeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.TransactionOutcome{}, err
	}

	switch {
	case resp.ID != "":
		return entities.TransactionOutcome{
			Succeeded:     resp.Status == "succeeded",
			TransactionID: resp.ID,
			Headline:      "Stripe transaction processed successfully",
			Detail:        fmt.Sprintf("Status: %s with Id: %s", resp.Status, resp.ID),
		}, nil
	case resp.Error != nil:
		return entities.TransactionOutcome{
			Headline: fmt.Sprintf("Field: %s", resp.Error.Param),
			Detail:   resp.Error.Message,
		}, nil
	default:
		return entities.TransactionOutcome{
			Headline: "Failed to process Stripe transaction",
			Detail:   "Stripe response contained no charge id",
		}, nil
	}
}
