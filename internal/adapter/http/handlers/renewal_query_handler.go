package handlers

import (
	"errors"
	"log"
	"net/http"

	response "renewal_automation/internal/adapter/http/dto/response"
	"renewal_automation/internal/usecase"
	"renewal_automation/pkg"

	"github.com/gin-gonic/gin"
)

// RenewalQueryHandler serves read access to the renewal billing table.

type RenewalQueryHandler struct {
	usecase usecase.IRenewalQueryUseCase
}

func NewRenewalQueryHandler(uc usecase.IRenewalQueryUseCase) *RenewalQueryHandler {
	return &RenewalQueryHandler{usecase: uc}
}

// ListRenewals returns the current renewal batch, optionally filtered by
// payment status via the `status` query parameter ("All" means no filter).
func (h *RenewalQueryHandler) ListRenewals(c *gin.Context) {
	statusFilter := c.Query("status")
	log.Printf("[renewal][handler] list start status_filter=%q", statusFilter)

	records, err := h.usecase.ListRenewals(c.Request.Context(), statusFilter)
	if err != nil {
		log.Printf("[renewal][handler] list failed status_filter=%q err=%v", statusFilter, err)
		appErr := mapRenewalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[renewal][handler] list success status_filter=%q count=%d", statusFilter, len(records))
	c.JSON(http.StatusOK, response.FromBillingRecords(records))
}

// GetRenewal returns one billing record by id.
func (h *RenewalQueryHandler) GetRenewal(c *gin.Context) {
	billingID := c.Param("billing_id")
	log.Printf("[renewal][handler] get start billing_id=%s", billingID)

	rec, err := h.usecase.GetByID(c.Request.Context(), billingID)
	if err != nil {
		log.Printf("[renewal][handler] get failed billing_id=%s err=%v", billingID, err)
		appErr := mapRenewalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingRecord(rec))
}

func mapRenewalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingID), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillingRecordNotFound):
		return pkg.NewDomainErrorSimple("BILLING_RECORD_NOT_FOUND", "Billing record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
