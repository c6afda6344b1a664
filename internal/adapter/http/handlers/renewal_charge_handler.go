package handlers

import (
	"errors"
	"log"
	"net/http"

	request "renewal_automation/internal/adapter/http/dto/request"
	response "renewal_automation/internal/adapter/http/dto/response"
	"renewal_automation/internal/usecase"
	"renewal_automation/internal/usecase/interfaces"
	"renewal_automation/pkg"

	"github.com/gin-gonic/gin"
)

// RenewalChargeHandler exposes the charge orchestration entry points.

type RenewalChargeHandler struct {
	usecase usecase.IRenewalChargeUseCase
}

func NewRenewalChargeHandler(uc usecase.IRenewalChargeUseCase) *RenewalChargeHandler {
	return &RenewalChargeHandler{usecase: uc}
}

// ChargeRenewal dispatches one billing record to its assigned gateway.
func (h *RenewalChargeHandler) ChargeRenewal(c *gin.Context) {
	billingID := c.Param("billing_id")
	log.Printf("[renewal][handler] charge start billing_id=%s", billingID)

	outcome, err := h.usecase.ChargeOne(c.Request.Context(), billingID)
	if err != nil {
		log.Printf("[renewal][handler] charge failed billing_id=%s err=%v", billingID, err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[renewal][handler] charge done billing_id=%s succeeded=%t transaction_id=%s", billingID, outcome.Succeeded, outcome.TransactionID)
	c.JSON(http.StatusOK, response.FromTransactionOutcome(outcome))
}

// ChargeAllRenewals runs the bulk dispatch. It requires an explicit
// `{"confirm": true}` body before any record is touched.
func (h *RenewalChargeHandler) ChargeAllRenewals(c *gin.Context) {
	var payload request.ChargeAllRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[renewal][handler] charge-all start confirm=%t", payload.Confirm)

	report, err := h.usecase.ChargeAll(c.Request.Context(), payload.Confirm)
	if err != nil {
		log.Printf("[renewal][handler] charge-all failed err=%v", err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[renewal][handler] charge-all done attempts=%d processed=%d", len(report.Attempts), report.Processed)
	c.JSON(http.StatusOK, response.FromChargeRunReport(report))
}

func mapChargeError(err error) *pkg.AppError {
	var transportErr *interfaces.TransportError
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingID), errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillingRecordNotFound):
		return pkg.NewDomainErrorSimple("BILLING_RECORD_NOT_FOUND", "Billing record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeRunInProgress):
		return pkg.NewDomainErrorSimple("CHARGE_RUN_IN_PROGRESS", "A charge run is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoEligibleRecords):
		return pkg.NewDomainErrorSimple("NO_ELIGIBLE_DATA", "No eligible data found for transactions.", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentPending),
		errors.Is(err, usecase.ErrPaymentAlreadyCharged),
		errors.Is(err, usecase.ErrMissingMandate),
		errors.Is(err, usecase.ErrMissingCardToken),
		errors.Is(err, usecase.ErrMissingCustomerID),
		errors.Is(err, usecase.ErrUnknownGateway):
		return pkg.NewDomainErrorSimple("VALIDATION_REJECTED", err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("GATEWAY_TRANSPORT_ERROR", transportErr.Detail(), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrEmptyGatewayResponse),
		errors.Is(err, usecase.ErrAmbiguousGatewayResponse),
		errors.Is(err, usecase.ErrUnsupportedGateway):
		return pkg.NewDomainError("GATEWAY_RESPONSE_INVALID", "Gateway response could not be interpreted", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
