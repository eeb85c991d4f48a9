package interfaces

import (
	"context"

	"beanpay/internal/domain/entities"
)

// IPaymentGateway abstracts the payment processor adapter.
//
// Follow-up operations (capture/refund/void) are addressed by the
// authorization token a prior call returned; the gateway itself keeps no
// state between calls.
type IPaymentGateway interface {
	Authorize(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error)
	Purchase(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error)
	Capture(ctx context.Context, amount entities.Money, authorization string) (entities.GatewayResult, error)
	Refund(ctx context.Context, amount entities.Money, authorization string) (entities.GatewayResult, error)
	Void(ctx context.Context, authorization string) (entities.GatewayResult, error)

	CreateRecurring(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error)
	UpdateRecurring(ctx context.Context, accountID string, amount entities.Money) (entities.GatewayResult, error)
	CancelRecurring(ctx context.Context, accountID string) (entities.GatewayResult, error)

	CreateProfile(ctx context.Context, instr entities.ProfileInstruction) (entities.GatewayResult, error)
	UpdateProfile(ctx context.Context, customerCode string, instr entities.ProfileInstruction) (entities.GatewayResult, error)
}
