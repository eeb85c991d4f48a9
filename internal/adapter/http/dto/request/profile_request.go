package request

import "beanpay/internal/domain/entities"

// ProfileRequest is the payload for secure-profile create and update routes.
// Exactly one of card or bank_account must be set; existing profiles are
// addressed by the customer code in the path, never in the body.
type ProfileRequest struct {
	Card        *CardRequest        `json:"card,omitempty"`
	BankAccount *BankAccountRequest `json:"bank_account,omitempty"`

	Billing        *AddressRequest `json:"billing,omitempty"`
	Email          string          `json:"email,omitempty"`
	CardValidation bool            `json:"card_validation,omitempty"`
	Status         string          `json:"status,omitempty"`
}

func (r ProfileRequest) ToInstruction() (entities.ProfileInstruction, error) {
	source, err := toSource(r.Card, r.BankAccount, "")
	if err != nil {
		return entities.ProfileInstruction{}, err
	}
	return entities.ProfileInstruction{
		Source:         source,
		Billing:        toAddress(r.Billing),
		Email:          r.Email,
		CardValidation: r.CardValidation,
		Status:         r.Status,
	}, nil
}
