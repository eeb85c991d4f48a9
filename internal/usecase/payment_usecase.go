package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrMissingAuthorization    = errors.New("transaction has no authorization token")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrMissingPaymentSource    = errors.New("missing payment source")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrRepositoryNotConfigured = errors.New("transaction repository not configured")
)

// IPaymentUseCase encapsulates the one-off payment operations. Every call
// runs one gateway round-trip and persists a Transaction record of the
// outcome; follow-up operations are addressed by the record ID of the
// original charge.
type IPaymentUseCase interface {
	Purchase(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error)
	Authorize(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error)
	Capture(ctx context.Context, transactionID string, amount entities.Money) (entities.Transaction, error)
	Refund(ctx context.Context, transactionID string, amount entities.Money) (entities.Transaction, error)
	Void(ctx context.Context, transactionID string) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.Transaction, error)
}

type PaymentUseCase struct {
	repo    interfaces.ITransactionRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) Purchase(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error) {
	return u.charge(ctx, entities.TransactionKindPurchase, instr)
}

func (u *PaymentUseCase) Authorize(ctx context.Context, instr entities.PaymentInstruction) (entities.Transaction, error) {
	return u.charge(ctx, entities.TransactionKindAuthorize, instr)
}

func (u *PaymentUseCase) charge(ctx context.Context, kind entities.TransactionKind, instr entities.PaymentInstruction) (entities.Transaction, error) {
	if err := u.configured(); err != nil {
		return entities.Transaction{}, err
	}
	if instr.Amount.IsZero() || instr.Amount.IsNegative() {
		log.Printf("[payment][usecase] %s rejected: invalid amount %q", kind, instr.Amount.String())
		return entities.Transaction{}, ErrInvalidAmount
	}
	if instr.Source.Kind == "" {
		log.Printf("[payment][usecase] %s rejected: no payment source", kind)
		return entities.Transaction{}, ErrMissingPaymentSource
	}
	if strings.TrimSpace(instr.OrderNumber) == "" {
		instr.OrderNumber = uuid.NewString()
		log.Printf("[payment][usecase] %s generated order_number=%s", kind, instr.OrderNumber)
	}

	log.Printf("[payment][usecase] %s start order_number=%s amount=%s source=%s", kind, instr.OrderNumber, instr.Amount.String(), instr.Source.Kind)
	var (
		result entities.GatewayResult
		err    error
	)
	if kind == entities.TransactionKindAuthorize {
		result, err = u.gateway.Authorize(ctx, instr)
	} else {
		result, err = u.gateway.Purchase(ctx, instr)
	}
	if err != nil {
		log.Printf("[payment][usecase] %s gateway failed order_number=%s err=%v", kind, instr.OrderNumber, err)
		return entities.Transaction{}, err
	}

	return u.persist(ctx, transactionFrom(kind, instr.OrderNumber, instr.Amount.String(), result))
}

// Capture completes a prior authorization, addressed by our record ID.
func (u *PaymentUseCase) Capture(ctx context.Context, transactionID string, amount entities.Money) (entities.Transaction, error) {
	return u.followUp(ctx, entities.TransactionKindCapture, transactionID, amount)
}

func (u *PaymentUseCase) Refund(ctx context.Context, transactionID string, amount entities.Money) (entities.Transaction, error) {
	return u.followUp(ctx, entities.TransactionKindRefund, transactionID, amount)
}

// Void cancels the original transaction in full; the amount is recovered
// from the stored authorization token, so none is taken here.
func (u *PaymentUseCase) Void(ctx context.Context, transactionID string) (entities.Transaction, error) {
	if err := u.configured(); err != nil {
		return entities.Transaction{}, err
	}
	prior, err := u.loadAuthorized(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][usecase] void start transaction_id=%s", transactionID)
	result, err := u.gateway.Void(ctx, prior.Authorization)
	if err != nil {
		log.Printf("[payment][usecase] void gateway failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}

	return u.persist(ctx, transactionFrom(entities.TransactionKindVoid, prior.OrderNumber, prior.Amount, result))
}

func (u *PaymentUseCase) followUp(ctx context.Context, kind entities.TransactionKind, transactionID string, amount entities.Money) (entities.Transaction, error) {
	if err := u.configured(); err != nil {
		return entities.Transaction{}, err
	}
	if amount.IsZero() || amount.IsNegative() {
		log.Printf("[payment][usecase] %s rejected: invalid amount %q", kind, amount.String())
		return entities.Transaction{}, ErrInvalidAmount
	}
	prior, err := u.loadAuthorized(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][usecase] %s start transaction_id=%s amount=%s", kind, transactionID, amount.String())
	var result entities.GatewayResult
	if kind == entities.TransactionKindCapture {
		result, err = u.gateway.Capture(ctx, amount, prior.Authorization)
	} else {
		result, err = u.gateway.Refund(ctx, amount, prior.Authorization)
	}
	if err != nil {
		log.Printf("[payment][usecase] %s gateway failed transaction_id=%s err=%v", kind, transactionID, err)
		return entities.Transaction{}, err
	}

	return u.persist(ctx, transactionFrom(kind, prior.OrderNumber, amount.String(), result))
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	if u.repo == nil {
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}
	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *PaymentUseCase) ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.Transaction, error) {
	if u.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return u.repo.ListByOrderNumber(ctx, orderNumber)
}

func (u *PaymentUseCase) configured() error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return ErrGatewayNotConfigured
	}
	if u.repo == nil {
		log.Printf("[payment][usecase] repository not configured")
		return ErrRepositoryNotConfigured
	}
	return nil
}

func (u *PaymentUseCase) loadAuthorized(ctx context.Context, transactionID string) (entities.Transaction, error) {
	prior, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		log.Printf("[payment][usecase] load failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}
	if prior.ID == "" {
		log.Printf("[payment][usecase] transaction not found transaction_id=%s", transactionID)
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if prior.Authorization == "" {
		log.Printf("[payment][usecase] no authorization token transaction_id=%s", transactionID)
		return entities.Transaction{}, ErrMissingAuthorization
	}
	return prior, nil
}

func (u *PaymentUseCase) persist(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed transaction_id=%s err=%v", tx.ID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] %s done transaction_id=%s status=%s", created.Kind, created.ID, created.Status)
	return created, nil
}

// transactionFrom derives the persisted record from a gateway result.
func transactionFrom(kind entities.TransactionKind, orderNumber, amount string, result entities.GatewayResult) entities.Transaction {
	status := entities.TransactionStatusDeclined
	if result.Success {
		status = entities.TransactionStatusApproved
	}
	return entities.Transaction{
		ID:            uuid.NewString(),
		OrderNumber:   orderNumber,
		Kind:          kind,
		Status:        status,
		Amount:        amount,
		GatewayID:     result.Fields["trnId"],
		Authorization: result.Authorization,
		Message:       result.Message,
		TestMode:      result.TestMode,
		CVVResult:     result.CVVResult,
		AVSCode:       result.AVSResult.Code,
		Date:          time.Now().UTC(),
	}
}
