package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase/interfaces"
)

var (
	ErrInvalidBillingID      = errors.New("invalid billing id")
	ErrBillingRecordNotFound = errors.New("billing record not found")
	ErrConfirmationRequired  = errors.New("bulk charge requires explicit confirmation")
	ErrChargeRunInProgress   = errors.New("a charge run is already in progress")
	ErrNoEligibleRecords     = errors.New("no eligible records for transactions")
)

// PostAttemptHook runs after every interpreted outcome. The default hook
// re-fetches the renewal batch so displayed state tracks the backing store,
// at the cost of one collaborator round trip per attempt.
type PostAttemptHook func(ctx context.Context)

// AttemptResult is the per-record entry of a bulk run report.
type AttemptResult struct {
	BillingID string                      `json:"billing_id"`
	Gateway   entities.PaymentGateway     `json:"gateway"`
	Outcome   entities.TransactionOutcome `json:"outcome"`
	Failure   string                      `json:"failure,omitempty"`
}

// ChargeRunReport aggregates a bulk run. Processed counts attempts that
// yielded a non-empty transaction id (success or identified business
// failure).
type ChargeRunReport struct {
	Processed      int             `json:"processed"`
	TransactionIDs []string        `json:"transaction_ids"`
	Attempts       []AttemptResult `json:"attempts"`
}

// IRenewalChargeUseCase orchestrates renewal charge attempts.
//
//   - ChargeOne validates and dispatches a single billing record.
//   - ChargeAll partitions the current batch by gateway eligibility and
//     processes every group sequentially, isolating per-record failures.

type IRenewalChargeUseCase interface {
	ChargeOne(ctx context.Context, billingID string) (entities.TransactionOutcome, error)
	ChargeAll(ctx context.Context, confirmed bool) (ChargeRunReport, error)
	Busy() bool
}

type RenewalChargeUseCase struct {
	repo     interfaces.IBillingRecordRepository
	adapters GatewayAdapters
	notifier interfaces.INotificationSink
	after    PostAttemptHook

	// busy serializes charge attempts; remote gateways are unbounded in
	// latency and concurrent attempts against one credential could race.
	busy atomic.Bool
}

var _ IRenewalChargeUseCase = (*RenewalChargeUseCase)(nil)

func NewRenewalChargeUseCase(repo interfaces.IBillingRecordRepository, adapters GatewayAdapters, notifier interfaces.INotificationSink, after PostAttemptHook) *RenewalChargeUseCase {
	return &RenewalChargeUseCase{repo: repo, adapters: adapters, notifier: notifier, after: after}
}

func (u *RenewalChargeUseCase) Busy() bool {
	return u.busy.Load()
}

func (u *RenewalChargeUseCase) ChargeOne(ctx context.Context, billingID string) (entities.TransactionOutcome, error) {
	billingID = strings.TrimSpace(billingID)
	if billingID == "" {
		return entities.TransactionOutcome{}, ErrInvalidBillingID
	}
	if !u.busy.CompareAndSwap(false, true) {
		return entities.TransactionOutcome{}, ErrChargeRunInProgress
	}
	defer u.busy.Store(false)

	log.Printf("[renewal][usecase] charge-one start billing_id=%s", billingID)
	rec, err := u.repo.GetByID(ctx, billingID)
	if err != nil {
		log.Printf("[renewal][usecase] charge-one fetch failed billing_id=%s err=%v", billingID, err)
		return entities.TransactionOutcome{}, err
	}
	if rec.ID == "" {
		log.Printf("[renewal][usecase] charge-one record not found billing_id=%s", billingID)
		return entities.TransactionOutcome{}, ErrBillingRecordNotFound
	}

	if err := ValidateChargeable(rec); err != nil {
		log.Printf("[renewal][usecase] charge-one rejected billing_id=%s reason=%q", billingID, err)
		// Pre-flight rejections warn; only failures of attempted charges
		// notify as errors.
		u.notify(err.Error(), "", entities.SeverityWarning)
		return entities.TransactionOutcome{}, err
	}

	outcome, err := u.attempt(ctx, rec)
	if err != nil {
		u.notifyAttemptError(rec, err)
		return entities.TransactionOutcome{}, err
	}
	return outcome, nil
}

func (u *RenewalChargeUseCase) ChargeAll(ctx context.Context, confirmed bool) (ChargeRunReport, error) {
	if !confirmed {
		return ChargeRunReport{}, ErrConfirmationRequired
	}
	if !u.busy.CompareAndSwap(false, true) {
		return ChargeRunReport{}, ErrChargeRunInProgress
	}
	defer u.busy.Store(false)

	log.Printf("[renewal][usecase] charge-all start")
	records, err := u.repo.FetchRenewalBillingRecords(ctx, "")
	if err != nil {
		log.Printf("[renewal][usecase] charge-all fetch failed err=%v", err)
		return ChargeRunReport{}, err
	}

	braintreeGroup := filterEligible(records, braintreeEligible)
	goCardlessGroup := filterEligible(records, goCardlessEligible)
	stripeGroup := filterEligible(records, stripeEligible)

	if len(braintreeGroup) == 0 && len(goCardlessGroup) == 0 && len(stripeGroup) == 0 {
		log.Printf("[renewal][usecase] charge-all no eligible records total=%d", len(records))
		u.notify("No eligible data found for transactions.", "", entities.SeverityWarning)
		return ChargeRunReport{}, ErrNoEligibleRecords
	}
	log.Printf("[renewal][usecase] charge-all groups braintree=%d gocardless=%d stripe=%d", len(braintreeGroup), len(goCardlessGroup), len(stripeGroup))

	// One gateway at a time, one record at a time. A failed attempt is
	// reported and never halts the rest of its group or later groups.
	report := ChargeRunReport{}
	for _, group := range []struct {
		gateway entities.PaymentGateway
		records []entities.BillingRecord
	}{
		{entities.GatewayBraintree, braintreeGroup},
		{entities.GatewayGoCardless, goCardlessGroup},
		{entities.GatewayStripe, stripeGroup},
	} {
		for _, rec := range group.records {
			result := AttemptResult{BillingID: rec.ID, Gateway: group.gateway}
			outcome, err := u.attempt(ctx, rec)
			if err != nil {
				log.Printf("[renewal][usecase] charge-all attempt failed billing_id=%s gateway=%s err=%v", rec.ID, group.gateway, err)
				u.notifyAttemptError(rec, err)
				result.Failure = err.Error()
			} else {
				result.Outcome = outcome
				if outcome.TransactionID != "" {
					report.TransactionIDs = append(report.TransactionIDs, outcome.TransactionID)
				}
			}
			report.Attempts = append(report.Attempts, result)
		}
	}

	report.Processed = len(report.TransactionIDs)
	log.Printf("[renewal][usecase] charge-all done attempts=%d processed=%d", len(report.Attempts), report.Processed)
	if report.Processed > 0 {
		u.notify(fmt.Sprintf("Successfully processed %d transactions", report.Processed), "", entities.SeveritySuccess)
	}
	return report, nil
}

// attempt runs build -> invoke -> interpret for one validated record and
// notifies the terminal outcome. Errors are returned to the caller's
// isolation boundary; the busy flag is managed by the entry points.
func (u *RenewalChargeUseCase) attempt(ctx context.Context, rec entities.BillingRecord) (entities.TransactionOutcome, error) {
	adapter, err := u.adapters.AdapterFor(rec.PaymentGateway)
	if err != nil {
		return entities.TransactionOutcome{}, err
	}

	payload, err := adapter.BuildRequest(rec)
	if err != nil {
		return entities.TransactionOutcome{}, err
	}

	raw, err := adapter.Invoke(ctx, rec, payload)
	if err != nil {
		return entities.TransactionOutcome{}, err
	}

	outcome, err := InterpretOutcome(adapter.Gateway(), raw)
	if err != nil {
		return entities.TransactionOutcome{}, err
	}

	if u.after != nil {
		u.after(ctx)
	}

	log.Printf("[renewal][usecase] attempt interpreted billing_id=%s gateway=%s succeeded=%t transaction_id=%s", rec.ID, adapter.Gateway(), outcome.Succeeded, outcome.TransactionID)
	u.notify(outcome.Headline, outcome.Detail, outcome.Severity())
	return outcome, nil
}

func (u *RenewalChargeUseCase) notify(headline, detail string, severity entities.Severity) {
	if u.notifier != nil {
		u.notifier.Notify(headline, detail, severity)
	}
}

func (u *RenewalChargeUseCase) notifyAttemptError(rec entities.BillingRecord, err error) {
	var transportErr *interfaces.TransportError
	if errors.As(err, &transportErr) {
		u.notify(fmt.Sprintf("%s %d", transportErr.StatusText, transportErr.StatusCode), transportErr.Detail(), entities.SeverityError)
		return
	}
	u.notify(fmt.Sprintf("Failed to process transaction for billing %s", rec.ID), err.Error(), entities.SeverityError)
}

type eligibilityFn func(entities.BillingRecord) bool

func filterEligible(records []entities.BillingRecord, eligible eligibilityFn) []entities.BillingRecord {
	var out []entities.BillingRecord
	for _, rec := range records {
		if eligible(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// complete checks the fields every eligibility group requires.
func complete(rec entities.BillingRecord) bool {
	return rec.ID != "" && rec.AccountID != "" && rec.Balance != 0 && rec.PaymentStatus.IsChargeable()
}

func braintreeEligible(rec entities.BillingRecord) bool {
	return complete(rec) &&
		(rec.PaymentGateway == entities.GatewayBraintree || rec.PaymentGateway == entities.GatewayBraintreeAndStripe) &&
		rec.CardToken != ""
}

func goCardlessEligible(rec entities.BillingRecord) bool {
	return complete(rec) && rec.PaymentGateway == entities.GatewayGoCardless && rec.MandateID != ""
}

func stripeEligible(rec entities.BillingRecord) bool {
	return complete(rec) && rec.PaymentGateway == entities.GatewayStripe && rec.StripeCustomerID != ""
}
