package beanstream

import (
	"context"
	"errors"
	"log"

	"beanpay/internal/domain/entities"
)

var (
	ErrMissingRecurringSchedule = errors.New("missing recurring schedule")
	ErrMissingStartDate         = errors.New("missing recurring start date")
	ErrMissingAccountID         = errors.New("missing recurring account id")
	ErrMissingCustomerCode      = errors.New("missing customer code")
)

// Gateway translates generic payment instructions into the Beanstream wire
// protocol and interprets the responses. It holds no mutable state: every
// call builds its parameter set from the immutable config plus the call's
// own arguments, so concurrent use only requires a concurrency-safe
// Transport.
type Gateway struct {
	config    Config
	transport Transport
}

// New validates the credentials and returns a gateway. A nil transport
// falls back to the production HTTP transport.
func New(cfg Config, transport Transport) (*Gateway, error) {
	if err := cfg.validate(); err != nil {
		log.Printf("[gateway][beanstream] invalid config: %v", err)
		return nil, err
	}
	if transport == nil {
		transport = NewHTTPTransport()
	}
	return &Gateway{config: cfg, transport: transport}, nil
}

// Authorize places a pre-auth hold (wire type PA) without capturing funds.
func (g *Gateway) Authorize(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error) {
	p := params{}
	addAmount(p, instr.Amount)
	addInvoice(p, instr)
	addSource(p, instr.Source)
	addAddress(p, instr.Email, instr.Billing, instr.Shipping)
	addTransactionType(p, TransactionAuthorization)
	return g.commit(ctx, EndpointTransaction, p)
}

// Purchase charges immediately. Bank-account sources go through the
// cheque-purchase type; a recurring schedule, when present, turns the
// charge into the first billing of a recurring account.
func (g *Gateway) Purchase(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error) {
	// The schedule's first billing date goes on the wire as MMDDYYYY; a zero
	// time would serialize as a real-looking but bogus date, so it is
	// rejected before any field is built.
	if instr.Recurring != nil && instr.Recurring.StartDate.IsZero() {
		return entities.GatewayResult{}, ErrMissingStartDate
	}
	p := params{}
	addAmount(p, instr.Amount)
	addInvoice(p, instr)
	addSource(p, instr.Source)
	addAddress(p, instr.Email, instr.Billing, instr.Shipping)
	addRecurring(p, instr.Recurring)
	addTransactionType(p, purchaseType(instr.Source))
	return g.commit(ctx, EndpointTransaction, p)
}

// Capture completes a prior authorization identified by its token.
func (g *Gateway) Capture(ctx context.Context, amount entities.Money, authorization string) (entities.GatewayResult, error) {
	auth := DecodeAuthorization(authorization)
	p := params{}
	addAmount(p, amount)
	addReference(p, auth.ID)
	addTransactionType(p, TransactionCapture)
	return g.commit(ctx, EndpointTransaction, p)
}

// Refund returns funds for a prior transaction. The refund kind is resolved
// from the type recorded in the token so a cheque purchase is reversed as a
// cheque refund.
func (g *Gateway) Refund(ctx context.Context, amount entities.Money, authorization string) (entities.GatewayResult, error) {
	auth := DecodeAuthorization(authorization)
	p := params{}
	addReference(p, auth.ID)
	addTransactionType(p, refundType(auth.Type))
	addAmount(p, amount)
	return g.commit(ctx, EndpointTransaction, p)
}

// Void cancels a prior transaction entirely, sending the original amount
// recovered from its token. The direction (void-purchase vs void-refund)
// follows the recorded type.
func (g *Gateway) Void(ctx context.Context, authorization string) (entities.GatewayResult, error) {
	auth := DecodeAuthorization(authorization)
	p := params{}
	addReference(p, auth.ID)
	addOriginalAmount(p, auth.Amount)
	addTransactionType(p, voidType(auth.Type))
	return g.commit(ctx, EndpointTransaction, p)
}

// CreateRecurring opens a recurring account by running the first billing as
// a purchase carrying the schedule fields.
func (g *Gateway) CreateRecurring(ctx context.Context, instr entities.PaymentInstruction) (entities.GatewayResult, error) {
	if instr.Recurring == nil {
		return entities.GatewayResult{}, ErrMissingRecurringSchedule
	}
	return g.Purchase(ctx, instr)
}

// UpdateRecurring changes the billing amount of an existing recurring
// account through the recurring API.
func (g *Gateway) UpdateRecurring(ctx context.Context, accountID string, amount entities.Money) (entities.GatewayResult, error) {
	if g.config.Passcode == "" {
		return entities.GatewayResult{}, ErrMissingPasscode
	}
	if accountID == "" {
		return entities.GatewayResult{}, ErrMissingAccountID
	}
	p := params{}
	addRecurringAmount(p, amount)
	addRecurringService(p, g.config, accountID)
	addRecurringOperation(p, "update")
	return g.commitRecurring(ctx, p)
}

// CancelRecurring closes a recurring account.
func (g *Gateway) CancelRecurring(ctx context.Context, accountID string) (entities.GatewayResult, error) {
	if g.config.Passcode == "" {
		return entities.GatewayResult{}, ErrMissingPasscode
	}
	if accountID == "" {
		return entities.GatewayResult{}, ErrMissingAccountID
	}
	p := params{}
	addRecurringService(p, g.config, accountID)
	addRecurringOperation(p, "cancel")
	return g.commitRecurring(ctx, p)
}

// CreateProfile stores a payment method with the gateway and returns the
// customer code under which it is vaulted.
func (g *Gateway) CreateProfile(ctx context.Context, instr entities.ProfileInstruction) (entities.GatewayResult, error) {
	if g.config.ProfilePasscode == "" {
		return entities.GatewayResult{}, ErrMissingProfilePasscode
	}
	p := params{}
	addSecureProfile(p, ProfileOperationNew, "", instr)
	addSource(p, instr.Source)
	addAddress(p, instr.Email, instr.Billing, nil)
	return g.commit(ctx, EndpointProfile, p)
}

// UpdateProfile replaces the payment method vaulted under customerCode.
func (g *Gateway) UpdateProfile(ctx context.Context, customerCode string, instr entities.ProfileInstruction) (entities.GatewayResult, error) {
	if g.config.ProfilePasscode == "" {
		return entities.GatewayResult{}, ErrMissingProfilePasscode
	}
	if customerCode == "" {
		return entities.GatewayResult{}, ErrMissingCustomerCode
	}
	p := params{}
	addSecureProfile(p, ProfileOperationModify, customerCode, instr)
	addSource(p, instr.Source)
	addAddress(p, instr.Email, instr.Billing, nil)
	return g.commit(ctx, EndpointProfile, p)
}

// commit sends a flat-dialect request. A transport failure is not an error
// path: it is treated as an empty response body, which interprets to
// success=false with no message.
func (g *Gateway) commit(ctx context.Context, endpoint Endpoint, p params) (entities.GatewayResult, error) {
	body := finalize(g.config, endpoint, p)
	raw, err := g.transport.Post(ctx, endpoint, body)
	if err != nil {
		log.Printf("[gateway][beanstream] transport failed endpoint=%s err=%v", endpoint, err)
		raw = ""
	}
	result := buildFlatResult(g.config, parseFlat(raw))
	log.Printf("[gateway][beanstream] commit endpoint=%s trnType=%s success=%t", endpoint, p["trnType"], result.Success)
	return result, nil
}

// commitRecurring sends a tree-dialect request. Unlike the flat dialect, a
// non-empty body that fails to parse is a hard error.
func (g *Gateway) commitRecurring(ctx context.Context, p params) (entities.GatewayResult, error) {
	body := finalize(g.config, EndpointRecurring, p)
	raw, err := g.transport.Post(ctx, EndpointRecurring, body)
	if err != nil {
		log.Printf("[gateway][beanstream] transport failed endpoint=%s err=%v", EndpointRecurring, err)
		raw = ""
	}
	fields, err := parseTree(raw)
	if err != nil {
		log.Printf("[gateway][beanstream] recurring parse failed err=%v", err)
		return entities.GatewayResult{}, err
	}
	result := buildTreeResult(g.config, fields)
	log.Printf("[gateway][beanstream] recurring commit operation=%s success=%t", p["operationType"], result.Success)
	return result, nil
}
