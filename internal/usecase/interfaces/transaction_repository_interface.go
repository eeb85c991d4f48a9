package interfaces

import (
	"context"

	"beanpay/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.Transaction, error)
}
