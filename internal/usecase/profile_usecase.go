package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase/interfaces"
)

var ErrMissingCustomerCode = errors.New("missing customer code")

// IProfileUseCase manages gateway-hosted secure payment profiles. Profiles
// live entirely at the gateway, so nothing is persisted locally; the
// customer code in the result is the caller's handle.
type IProfileUseCase interface {
	Create(ctx context.Context, instr entities.ProfileInstruction) (entities.GatewayResult, error)
	Update(ctx context.Context, customerCode string, instr entities.ProfileInstruction) (entities.GatewayResult, error)
}

type ProfileUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(gateway interfaces.IPaymentGateway) *ProfileUseCase {
	return &ProfileUseCase{gateway: gateway}
}

func (u *ProfileUseCase) Create(ctx context.Context, instr entities.ProfileInstruction) (entities.GatewayResult, error) {
	if u.gateway == nil {
		return entities.GatewayResult{}, ErrGatewayNotConfigured
	}
	if instr.Source.Kind == "" {
		log.Printf("[profile][usecase] create rejected: no payment source")
		return entities.GatewayResult{}, ErrMissingPaymentSource
	}

	log.Printf("[profile][usecase] create start source=%s", instr.Source.Kind)
	result, err := u.gateway.CreateProfile(ctx, instr)
	if err != nil {
		log.Printf("[profile][usecase] create gateway failed err=%v", err)
		return entities.GatewayResult{}, err
	}
	log.Printf("[profile][usecase] create done success=%t customer_code=%s", result.Success, result.Fields["customer_vault_id"])
	return result, nil
}

func (u *ProfileUseCase) Update(ctx context.Context, customerCode string, instr entities.ProfileInstruction) (entities.GatewayResult, error) {
	if u.gateway == nil {
		return entities.GatewayResult{}, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(customerCode) == "" {
		return entities.GatewayResult{}, ErrMissingCustomerCode
	}

	log.Printf("[profile][usecase] update start customer_code=%s", customerCode)
	result, err := u.gateway.UpdateProfile(ctx, customerCode, instr)
	if err != nil {
		log.Printf("[profile][usecase] update gateway failed customer_code=%s err=%v", customerCode, err)
		return entities.GatewayResult{}, err
	}
	log.Printf("[profile][usecase] update done customer_code=%s success=%t", customerCode, result.Success)
	return result, nil
}
