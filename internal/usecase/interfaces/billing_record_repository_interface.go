package interfaces

import (
	"context"
	"renewal_automation/internal/domain/entities"
)

//go:generate mockgen -source=billing_record_repository_interface.go -destination=mocks/billing_record_repository_mock.go -package=mock_interfaces

// IBillingRecordRepository abstracts the backing store holding renewal
// billing records.
//
// The renewal service only reads: record status is written by the integration
// proxy the gateway transports call through, and observed here via re-fetch.
type IBillingRecordRepository interface {
	// FetchRenewalBillingRecords returns the current renewal batch. An empty
	// statusFilter (or "All") returns every record.
	FetchRenewalBillingRecords(ctx context.Context, statusFilter string) ([]entities.BillingRecord, error)
	GetByID(ctx context.Context, id string) (entities.BillingRecord, error)
}
