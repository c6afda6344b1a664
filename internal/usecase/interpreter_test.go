package usecase

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"renewal_automation/internal/domain/entities"
)

func TestInterpretOutcome_EmptyResponse(t *testing.T) {
	if _, err := InterpretOutcome(entities.GatewayStripe, nil); !errors.Is(err, ErrEmptyGatewayResponse) {
		t.Fatalf("expected ErrEmptyGatewayResponse, got %v", err)
	}
}

func TestInterpretOutcome_Braintree(t *testing.T) {
	t.Run("submitted for settlement", func(t *testing.T) {
		raw := json.RawMessage(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-1","status":"SUBMITTED_FOR_SETTLEMENT"}}}}`)
		out, err := InterpretOutcome(entities.GatewayBraintree, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Succeeded || out.TransactionID != "bt-1" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Detail != "Status: SUBMITTED_FOR_SETTLEMENT" {
			t.Fatalf("unexpected detail: %q", out.Detail)
		}
	})

	t.Run("other nested status fails", func(t *testing.T) {
		raw := json.RawMessage(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-2","status":"PROCESSOR_DECLINED"}}}}`)
		out, err := InterpretOutcome(entities.GatewayBraintree, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded || out.TransactionID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Detail != "PROCESSOR_DECLINED" {
			t.Fatalf("unexpected detail: %q", out.Detail)
		}
	})

	t.Run("errors array overrides nested settlement status", func(t *testing.T) {
		raw := json.RawMessage(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-3","status":"SUBMITTED_FOR_SETTLEMENT"}}},"errors":[{"message":"Amount is invalid"},{"message":"second"}]}`)
		out, err := InterpretOutcome(entities.GatewayBraintree, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded {
			t.Fatalf("errors must override settlement status: %+v", out)
		}
		if out.Detail != "Amount is invalid" {
			t.Fatalf("expected first error message, got %q", out.Detail)
		}
		if out.TransactionID != "bt-3" {
			t.Fatalf("settled transaction id must survive the errors override: %+v", out)
		}
	})

	t.Run("errors array on unsettled status carries no id", func(t *testing.T) {
		raw := json.RawMessage(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-5","status":"PROCESSOR_DECLINED"}}},"errors":[{"message":"Amount is invalid"}]}`)
		out, err := InterpretOutcome(entities.GatewayBraintree, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded || out.TransactionID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Detail != "Amount is invalid" {
			t.Fatalf("unexpected detail: %q", out.Detail)
		}
	})

	t.Run("dual variant interprets as braintree", func(t *testing.T) {
		raw := json.RawMessage(`{"data":{"chargePaymentMethod":{"transaction":{"id":"bt-4","status":"SUBMITTED_FOR_SETTLEMENT"}}}}`)
		out, err := InterpretOutcome(entities.GatewayBraintreeAndStripe, raw)
		if err != nil || !out.Succeeded || out.TransactionID != "bt-4" {
			t.Fatalf("unexpected result: %+v err=%v", out, err)
		}
	})
}

func TestInterpretOutcome_GoCardless(t *testing.T) {
	t.Run("payments object means success", func(t *testing.T) {
		raw := json.RawMessage(`{"payments":{"id":"PM123","status":"pending_submission","charge_date":"2024-01-01"}}`)
		out, err := InterpretOutcome(entities.GatewayGoCardless, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Succeeded || out.TransactionID != "PM123" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Detail != "Status: pending_submission and Charge date: 2024-01-01" {
			t.Fatalf("unexpected detail: %q", out.Detail)
		}
	})

	t.Run("error object aggregates entries, last wins", func(t *testing.T) {
		raw := json.RawMessage(`{"error":{"code":422,"errors":[{"reason":"mandate_not_found","message":"Mandate not found"},{"field":"amount","message":"Amount too low"}]}}`)
		out, err := InterpretOutcome(entities.GatewayGoCardless, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded || out.TransactionID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Headline != "Error: Amount too low." {
			t.Fatalf("expected last error entry to win, got %q", out.Headline)
		}
		if out.Detail != "Status Code: 422 Reason or Field: amount" {
			t.Fatalf("unexpected detail: %q", out.Detail)
		}
	})

	t.Run("reason preferred over field", func(t *testing.T) {
		raw := json.RawMessage(`{"error":{"code":400,"errors":[{"reason":"bank_account_closed","field":"links.mandate","message":"closed"}]}}`)
		out, err := InterpretOutcome(entities.GatewayGoCardless, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Detail, "bank_account_closed") {
			t.Fatalf("expected reason in detail, got %q", out.Detail)
		}
	})

	t.Run("neither payments nor error is a hard error", func(t *testing.T) {
		if _, err := InterpretOutcome(entities.GatewayGoCardless, json.RawMessage(`{}`)); !errors.Is(err, ErrAmbiguousGatewayResponse) {
			t.Fatalf("expected ErrAmbiguousGatewayResponse, got %v", err)
		}
	})
}

func TestInterpretOutcome_Stripe(t *testing.T) {
	t.Run("succeeded status", func(t *testing.T) {
		out, err := InterpretOutcome(entities.GatewayStripe, json.RawMessage(`{"id":"ch_1","status":"succeeded"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Succeeded || out.TransactionID != "ch_1" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("failed status keeps the charge id", func(t *testing.T) {
		out, err := InterpretOutcome(entities.GatewayStripe, json.RawMessage(`{"id":"ch_2","status":"failed"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded {
			t.Fatalf("failed status must not succeed: %+v", out)
		}
		if out.TransactionID != "ch_2" {
			t.Fatalf("identified failure must keep the charge id: %+v", out)
		}
	})

	t.Run("error object without id", func(t *testing.T) {
		out, err := InterpretOutcome(entities.GatewayStripe, json.RawMessage(`{"error":{"message":"No such customer","param":"customer"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded || out.TransactionID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.Headline != "Field: customer" || out.Detail != "No such customer" {
			t.Fatalf("unexpected messages: %+v", out)
		}
	})

	t.Run("neither id nor error", func(t *testing.T) {
		out, err := InterpretOutcome(entities.GatewayStripe, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Succeeded || out.TransactionID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})
}

func TestInterpretOutcome_UnknownGateway(t *testing.T) {
	if _, err := InterpretOutcome(entities.GatewayUnknown, json.RawMessage(`{}`)); !errors.Is(err, ErrUnsupportedGateway) {
		t.Fatalf("expected ErrUnsupportedGateway, got %v", err)
	}
}
