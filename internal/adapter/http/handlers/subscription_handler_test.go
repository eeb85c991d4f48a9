package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"beanpay/internal/adapter/http/handlers/mocks"
	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const subscriptionBody = `{
	"amount": "30.00",
	"card": {"name": "Jim Smith", "number": "4030000010001234", "exp_month": 9, "exp_year": 2028, "cvd": "123"},
	"recurring": {"unit": "months", "length": 1, "start_date": "2026-09-01", "occurrences": 12}
}`

func subscriptionRouter(h *SubscriptionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/subscriptions", h.Create)
	r.PATCH("/v1/subscriptions/:account_id", h.Update)
	r.DELETE("/v1/subscriptions/:account_id", h.Cancel)
	return r
}

func TestSubscriptionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid recurring unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		w := postJSON(r, "/v1/subscriptions", `{
			"amount": "30.00",
			"card": {"name": "Jim", "number": "4030000010001234", "exp_month": 9, "exp_year": 2028},
			"recurring": {"unit": "fortnights", "length": 1}
		}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		w := postJSON(r, "/v1/subscriptions", `{
			"amount": "30.00",
			"card": {"name": "Jim", "number": "4030000010001234", "exp_month": 9, "exp_year": 2028},
			"recurring": {"unit": "months", "length": 1}
		}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrMissingSchedule)

		w := postJSON(r, "/v1/subscriptions", `{
			"amount": "30.00",
			"card": {"name": "Jim", "number": "4030000010001234", "exp_month": 9, "exp_year": 2028}
		}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{
			ID:     "tx-1",
			Kind:   entities.TransactionKindRecurring,
			Status: entities.TransactionStatusApproved,
		}, nil)

		w := postJSON(r, "/v1/subscriptions", subscriptionBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["kind"] != "recurring" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/subscriptions/2100", bytes.NewBufferString(`{"amount":"0"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "2100", gomock.Any()).Return(entities.GatewayResult{Success: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/subscriptions/2100", bytes.NewBufferString(`{"amount":"45.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), " ").Return(entities.GatewayResult{}, usecase.ErrMissingSubscriptionID)

		req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		r := subscriptionRouter(NewSubscriptionHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "2100").Return(entities.GatewayResult{Success: true, Message: "Request successful"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/2100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
