package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"beanpay/internal/domain/entities"
	mock_interfaces "beanpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func recurringInstruction(t *testing.T, amount string) entities.PaymentInstruction {
	t.Helper()
	instr := cardInstruction(t, amount)
	instr.Recurring = &entities.RecurringSchedule{
		Unit:      entities.IntervalMonths,
		Length:    1,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	return instr
}

func TestSubscriptionUseCase_Create(t *testing.T) {
	t.Run("missing schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(repo, gateway)

		_, err := uc.Create(context.Background(), cardInstruction(t, "30.00"))
		if !errors.Is(err, ErrMissingSchedule) {
			t.Fatalf("expected ErrMissingSchedule, got %v", err)
		}
	})

	t.Run("first billing persisted as recurring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(repo, gateway)

		gateway.EXPECT().CreateRecurring(gomock.Any(), gomock.Any()).Return(approvedResult("10000;30.00;P"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Kind != entities.TransactionKindRecurring {
					t.Fatalf("unexpected kind: %s", tx.Kind)
				}
				if tx.Status != entities.TransactionStatusApproved {
					t.Fatalf("unexpected status: %s", tx.Status)
				}
				return tx, nil
			})

		created, err := uc.Create(context.Background(), recurringInstruction(t, "30.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Amount != "30.00" {
			t.Fatalf("unexpected amount: %q", created.Amount)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(repo, gateway)

		gateway.EXPECT().CreateRecurring(gomock.Any(), gomock.Any()).Return(entities.GatewayResult{}, errors.New("boom"))

		if _, err := uc.Create(context.Background(), recurringInstruction(t, "30.00")); err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_Update(t *testing.T) {
	t.Run("missing account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, gateway)

		_, err := uc.Update(context.Background(), " ", testMoney(t, "45.00"))
		if !errors.Is(err, ErrMissingSubscriptionID) {
			t.Fatalf("expected ErrMissingSubscriptionID, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, gateway)

		_, err := uc.Update(context.Background(), "2100", testMoney(t, "0"))
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("amount forwarded to gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, gateway)

		gateway.EXPECT().UpdateRecurring(gomock.Any(), "2100", testMoney(t, "45.00")).Return(entities.GatewayResult{Success: true}, nil)

		result, err := uc.Update(context.Background(), "2100", testMoney(t, "45.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatalf("expected success")
		}
	})
}

func TestSubscriptionUseCase_Cancel(t *testing.T) {
	t.Run("missing account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, gateway)

		_, err := uc.Cancel(context.Background(), "")
		if !errors.Is(err, ErrMissingSubscriptionID) {
			t.Fatalf("expected ErrMissingSubscriptionID, got %v", err)
		}
	})

	t.Run("cancel forwarded to gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, gateway)

		gateway.EXPECT().CancelRecurring(gomock.Any(), "2100").Return(entities.GatewayResult{Success: true, Message: "Request successful"}, nil)

		result, err := uc.Cancel(context.Background(), "2100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Message != "Request successful" {
			t.Fatalf("unexpected message: %q", result.Message)
		}
	})
}
