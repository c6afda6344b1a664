package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"renewal_automation/internal/adapter/http/handlers/mocks"
	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase"
	"renewal_automation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRenewalChargeHandler_ChargeRenewal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation rejection maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/:billing_id/charge", h.ChargeRenewal)

		uc.EXPECT().ChargeOne(gomock.Any(), "bill-1").Return(entities.TransactionOutcome{}, usecase.ErrMissingMandate)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/bill-1/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != usecase.ErrMissingMandate.Error() {
			t.Fatalf("validation reason must pass through, got %s", w.Body.String())
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/:billing_id/charge", h.ChargeRenewal)

		uc.EXPECT().ChargeOne(gomock.Any(), "missing").Return(entities.TransactionOutcome{}, usecase.ErrBillingRecordNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/missing/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("transport error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/:billing_id/charge", h.ChargeRenewal)

		transportErr := &interfaces.TransportError{Gateway: "STRIPE", StatusCode: 503, StatusText: "Service Unavailable"}
		uc.EXPECT().ChargeOne(gomock.Any(), "bill-1").Return(entities.TransactionOutcome{}, transportErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/bill-1/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/:billing_id/charge", h.ChargeRenewal)

		uc.EXPECT().ChargeOne(gomock.Any(), "bill-1").Return(entities.TransactionOutcome{
			Succeeded:     true,
			TransactionID: "ch_1",
			Headline:      "Stripe transaction processed successfully",
			Detail:        "Status: succeeded with Id: ch_1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/bill-1/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["transaction_id"] != "ch_1" || body["severity"] != "success" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRenewalChargeHandler_ChargeAllRenewals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/charge-all", h.ChargeAllRenewals)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/charge-all", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfirmed run maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/charge-all", h.ChargeAllRenewals)

		uc.EXPECT().ChargeAll(gomock.Any(), false).Return(usecase.ChargeRunReport{}, usecase.ErrConfirmationRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/charge-all", bytes.NewBufferString(`{"confirm":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("busy run maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/charge-all", h.ChargeAllRenewals)

		uc.EXPECT().ChargeAll(gomock.Any(), true).Return(usecase.ChargeRunReport{}, usecase.ErrChargeRunInProgress)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/charge-all", bytes.NewBufferString(`{"confirm":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no eligible data maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/charge-all", h.ChargeAllRenewals)

		uc.EXPECT().ChargeAll(gomock.Any(), true).Return(usecase.ChargeRunReport{}, usecase.ErrNoEligibleRecords)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/charge-all", bytes.NewBufferString(`{"confirm":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRenewalChargeUseCase(ctrl)
		h := NewRenewalChargeHandler(uc)

		r := gin.New()
		r.POST("/v1/renewals/charge-all", h.ChargeAllRenewals)

		report := usecase.ChargeRunReport{
			Processed:      2,
			TransactionIDs: []string{"ch_1", "PM1"},
			Attempts: []usecase.AttemptResult{
				{BillingID: "bill-1", Gateway: entities.GatewayStripe, Outcome: entities.TransactionOutcome{Succeeded: true, TransactionID: "ch_1"}},
				{BillingID: "bill-2", Gateway: entities.GatewayGoCardless, Outcome: entities.TransactionOutcome{Succeeded: true, TransactionID: "PM1"}},
				{BillingID: "bill-3", Gateway: entities.GatewayGoCardless, Failure: "transport error"},
			},
		}
		uc.EXPECT().ChargeAll(gomock.Any(), true).Return(report, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/renewals/charge-all", bytes.NewBufferString(`{"confirm":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["processed"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
