package usecase

import (
	"context"
	"errors"
	"strings"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase/interfaces"
)

var ErrInvalidStatusFilter = errors.New("invalid payment status filter")

// IRenewalQueryUseCase exposes read access to the renewal batch.
//
//   - ListRenewals backs the renewal table, optionally filtered by payment
//     status ("All" or empty means no filter).
//   - GetByID backs the single-record view.

type IRenewalQueryUseCase interface {
	ListRenewals(ctx context.Context, statusFilter string) ([]entities.BillingRecord, error)
	GetByID(ctx context.Context, id string) (entities.BillingRecord, error)
}

type RenewalQueryUseCase struct {
	repo interfaces.IBillingRecordRepository
}

var _ IRenewalQueryUseCase = (*RenewalQueryUseCase)(nil)

func NewRenewalQueryUseCase(repo interfaces.IBillingRecordRepository) *RenewalQueryUseCase {
	return &RenewalQueryUseCase{repo: repo}
}

func (u *RenewalQueryUseCase) ListRenewals(ctx context.Context, statusFilter string) ([]entities.BillingRecord, error) {
	statusFilter = strings.TrimSpace(statusFilter)
	if statusFilter == "All" {
		statusFilter = ""
	}
	if statusFilter != "" {
		switch entities.PaymentStatus(statusFilter) {
		case entities.PaymentStatusUncharged, entities.PaymentStatusUnsuccessful,
			entities.PaymentStatusPending, entities.PaymentStatusSuccessful:
		default:
			return nil, ErrInvalidStatusFilter
		}
	}
	return u.repo.FetchRenewalBillingRecords(ctx, statusFilter)
}

func (u *RenewalQueryUseCase) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingRecord{}, ErrInvalidBillingID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	if rec.ID == "" {
		return entities.BillingRecord{}, ErrBillingRecordNotFound
	}
	return rec, nil
}
