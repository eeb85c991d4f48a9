package usecase

import (
	"context"
	"errors"
	"testing"

	"beanpay/internal/domain/entities"
	mock_interfaces "beanpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func profileInstruction() entities.ProfileInstruction {
	return entities.ProfileInstruction{
		Source: entities.CardSource(entities.Card{
			Name:     "Jim Smith",
			Number:   "4030000010001234",
			ExpMonth: 9,
			ExpYear:  2028,
			CVD:      "123",
		}),
		Email: "jim@example.com",
	}
}

func TestProfileUseCase_Create(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.Create(context.Background(), profileInstruction())
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProfileUseCase(gateway)

		_, err := uc.Create(context.Background(), entities.ProfileInstruction{})
		if !errors.Is(err, ErrMissingPaymentSource) {
			t.Fatalf("expected ErrMissingPaymentSource, got %v", err)
		}
	})

	t.Run("create forwarded to gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProfileUseCase(gateway)

		gateway.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(entities.GatewayResult{
			Success: true,
			Fields:  map[string]string{"customer_vault_id": "CST-9"},
		}, nil)

		result, err := uc.Create(context.Background(), profileInstruction())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Fields["customer_vault_id"] != "CST-9" {
			t.Fatalf("unexpected fields: %+v", result.Fields)
		}
	})
}

func TestProfileUseCase_Update(t *testing.T) {
	t.Run("missing customer code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProfileUseCase(gateway)

		_, err := uc.Update(context.Background(), "  ", profileInstruction())
		if !errors.Is(err, ErrMissingCustomerCode) {
			t.Fatalf("expected ErrMissingCustomerCode, got %v", err)
		}
	})

	t.Run("update forwarded to gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProfileUseCase(gateway)

		gateway.EXPECT().UpdateProfile(gomock.Any(), "CST-9", gomock.Any()).Return(entities.GatewayResult{Success: true}, nil)

		result, err := uc.Update(context.Background(), "CST-9", profileInstruction())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatalf("expected success")
		}
	})
}
