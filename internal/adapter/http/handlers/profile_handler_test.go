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

const profileBody = `{
	"card": {"name": "Jim Smith", "number": "4030000010001234", "exp_month": 9, "exp_year": 2028, "cvd": "123"},
	"email": "jim@example.com",
	"card_validation": true
}`

func profileRouter(h *ProfileHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/profiles", h.Create)
	r.PUT("/v1/profiles/:customer_code", h.Update)
	return r
}

func TestProfileHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		r := profileRouter(NewProfileHandler(uc))

		w := postJSON(r, "/v1/profiles", `{"email":"jim@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns customer code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		r := profileRouter(NewProfileHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GatewayResult{
			Success: true,
			Fields:  map[string]string{"customer_vault_id": "CST-9"},
		}, nil)

		w := postJSON(r, "/v1/profiles", profileBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["customer_code"] != "CST-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProfileHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		r := profileRouter(NewProfileHandler(uc))

		uc.EXPECT().Update(gomock.Any(), " ", gomock.Any()).Return(entities.GatewayResult{}, usecase.ErrMissingCustomerCode)

		req := httptest.NewRequest(http.MethodPut, "/v1/profiles/%20", bytes.NewBufferString(profileBody))
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
		uc := mocks.NewMockIProfileUseCase(ctrl)
		r := profileRouter(NewProfileHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "CST-9", gomock.Any()).Return(entities.GatewayResult{Success: true}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/profiles/CST-9", bytes.NewBufferString(profileBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
