package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingSchedule       = errors.New("missing recurring schedule")
	ErrMissingSubscriptionID = errors.New("missing subscription account id")
)

// ISubscriptionUseCase drives recurring billing. Create runs the first
// billing as a charge and persists it; Update and Cancel manage the
// gateway-hosted account and persist nothing.
type ISubscriptionUseCase interface {
	Create(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error)
	Update(ctx context.Context, accountID string, amount entities.Money) (entities.GatewayResult, error)
	Cancel(ctx context.Context, accountID string) (entities.GatewayResult, error)
}

type SubscriptionUseCase struct {
	repo    interfaces.ITransactionRepository
	gateway interfaces.IPaymentGateway
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, gateway: gateway}
}

func (u *SubscriptionUseCase) Create(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrGatewayNotConfigured
	}
	if u.repo == nil {
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}
	if instr.Recurring == nil {
		log.Printf("[subscription][usecase] create rejected: no schedule")
		return entities.Transaction{}, ErrMissingSchedule
	}
	if instr.Amount.IsZero() || instr.Amount.IsNegative() {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if instr.Source.Kind == "" {
		return entities.Transaction{}, ErrMissingPaymentSource
	}
	if strings.TrimSpace(instr.OrderNumber) == "" {
		instr.OrderNumber = uuid.NewString()
	}

	log.Printf("[subscription][usecase] create start order_number=%s amount=%s", instr.OrderNumber, instr.Amount.String())
	result, err := u.gateway.CreateRecurring(ctx, instr)
	if err != nil {
		log.Printf("[subscription][usecase] create gateway failed order_number=%s err=%v", instr.OrderNumber, err)
		return entities.Transaction{}, err
	}

	tx := transactionFrom(entities.TransactionKindRecurring, instr.OrderNumber, instr.Amount.String(), result)
	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[subscription][usecase] repository create failed transaction_id=%s err=%v", tx.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[subscription][usecase] create done transaction_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *SubscriptionUseCase) Update(ctx context.Context, accountID string, amount entities.Money) (entities.GatewayResult, error) {
	if u.gateway == nil {
		return entities.GatewayResult{}, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(accountID) == "" {
		return entities.GatewayResult{}, ErrMissingSubscriptionID
	}
	if amount.IsZero() || amount.IsNegative() {
		return entities.GatewayResult{}, ErrInvalidAmount
	}

	log.Printf("[subscription][usecase] update start account_id=%s amount=%s", accountID, amount.String())
	result, err := u.gateway.UpdateRecurring(ctx, accountID, amount)
	if err != nil {
		log.Printf("[subscription][usecase] update gateway failed account_id=%s err=%v", accountID, err)
		return entities.GatewayResult{}, err
	}
	log.Printf("[subscription][usecase] update done account_id=%s success=%t", accountID, result.Success)
	return result, nil
}

func (u *SubscriptionUseCase) Cancel(ctx context.Context, accountID string) (entities.GatewayResult, error) {
	if u.gateway == nil {
		return entities.GatewayResult{}, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(accountID) == "" {
		return entities.GatewayResult{}, ErrMissingSubscriptionID
	}

	log.Printf("[subscription][usecase] cancel start account_id=%s", accountID)
	result, err := u.gateway.CancelRecurring(ctx, accountID)
	if err != nil {
		log.Printf("[subscription][usecase] cancel gateway failed account_id=%s err=%v", accountID, err)
		return entities.GatewayResult{}, err
	}
	log.Printf("[subscription][usecase] cancel done account_id=%s success=%t", accountID, result.Success)
	return result, nil
}
