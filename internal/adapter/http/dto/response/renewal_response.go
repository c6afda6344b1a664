package response

import (
	"time"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase"
)

// BillingRecordResponse is the renewal-table row shape. AccountLink and
// BillingLink are relative navigation paths for the consuming UI.
type BillingRecordResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	AccountID         string    `json:"account_id"`
	CustomerName      string    `json:"customer_name"`
	BillingDate       time.Time `json:"billing_date"`
	SubscriptionType  string    `json:"subscription_type"`
	Total             float64   `json:"total"`
	Balance           float64   `json:"balance"`
	PaymentStatus     string    `json:"payment_status"`
	PaymentGateway    string    `json:"payment_gateway"`
	ProcessorResponse string    `json:"processor_response,omitempty"`
	AccountLink       string    `json:"account_link"`
	BillingLink       string    `json:"billing_link"`
}

func FromBillingRecord(rec entities.BillingRecord) BillingRecordResponse {
	return BillingRecordResponse{
		ID:                rec.ID,
		Name:              rec.Name,
		AccountID:         rec.AccountID,
		CustomerName:      rec.CustomerName,
		BillingDate:       rec.BillingDate,
		SubscriptionType:  rec.SubscriptionType,
		Total:             rec.Total,
		Balance:           rec.Balance,
		PaymentStatus:     string(rec.PaymentStatus),
		PaymentGateway:    string(rec.PaymentGateway),
		ProcessorResponse: rec.ProcessorResponse,
		AccountLink:       "/" + rec.AccountID,
		BillingLink:       "/" + rec.ID,
	}
}

func FromBillingRecords(recs []entities.BillingRecord) []BillingRecordResponse {
	out := make([]BillingRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromBillingRecord(rec))
	}
	return out
}

type TransactionOutcomeResponse struct {
	Succeeded     bool   `json:"succeeded"`
	TransactionID string `json:"transaction_id,omitempty"`
	Headline      string `json:"headline"`
	Detail        string `json:"detail"`
	Severity      string `json:"severity"`
}

func FromTransactionOutcome(o entities.TransactionOutcome) TransactionOutcomeResponse {
	return TransactionOutcomeResponse{
		Succeeded:     o.Succeeded,
		TransactionID: o.TransactionID,
		Headline:      o.Headline,
		Detail:        o.Detail,
		Severity:      string(o.Severity()),
	}
}

type AttemptResultResponse struct {
	BillingID string                      `json:"billing_id"`
	Gateway   string                      `json:"gateway"`
	Outcome   *TransactionOutcomeResponse `json:"outcome,omitempty"`
	Failure   string                      `json:"failure,omitempty"`
}

type ChargeRunReportResponse struct {
	Processed      int                     `json:"processed"`
	TransactionIDs []string                `json:"transaction_ids"`
	Attempts       []AttemptResultResponse `json:"attempts"`
}

func FromChargeRunReport(r usecase.ChargeRunReport) ChargeRunReportResponse {
	attempts := make([]AttemptResultResponse, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		item := AttemptResultResponse{
			BillingID: a.BillingID,
			Gateway:   string(a.Gateway),
			Failure:   a.Failure,
		}
		if a.Failure == "" {
			outcome := FromTransactionOutcome(a.Outcome)
			item.Outcome = &outcome
		}
		attempts = append(attempts, item)
	}
	return ChargeRunReportResponse{
		Processed:      r.Processed,
		TransactionIDs: r.TransactionIDs,
		Attempts:       attempts,
	}
}
