package entities

import "fmt"

// PaymentSourceKind tags the concrete payment-source variant.
type PaymentSourceKind string

const (
	SourceCard        PaymentSourceKind = "card"
	SourceBankAccount PaymentSourceKind = "bank_account"
	SourceProfile     PaymentSourceKind = "profile"
)

// Card is a credit card payment source.
type Card struct {
	Name     string
	Number   string
	ExpMonth int
	ExpYear  int
	CVD      string
}

// ExpiryTwoDigits renders month and year as the two-digit pairs the gateway
// expects (month zero-padded, year modulo 100).
func (c Card) ExpiryTwoDigits() (month, year string) {
	return fmt.Sprintf("%02d", c.ExpMonth), fmt.Sprintf("%02d", c.ExpYear%100)
}

// BankAccount is an EFT/cheque payment source.
//
// Institution and transit numbers are required for Canadian dollar EFT; the
// routing number is required for US dollar EFT; the account number is always
// required.
type BankAccount struct {
	InstitutionNumber string
	TransitNumber     string
	RoutingNumber     string
	AccountNumber     string
}

// PaymentSource is a tagged union: exactly one variant is populated,
// selected by Kind.
type PaymentSource struct {
	Kind        PaymentSourceKind
	Card        *Card
	BankAccount *BankAccount

	// CustomerCode references a gateway-hosted secure profile instead of
	// resending card or account data.
	CustomerCode string
}

func CardSource(card Card) PaymentSource {
	return PaymentSource{Kind: SourceCard, Card: &card}
}

func BankAccountSource(account BankAccount) PaymentSource {
	return PaymentSource{Kind: SourceBankAccount, BankAccount: &account}
}

func ProfileSource(customerCode string) PaymentSource {
	return PaymentSource{Kind: SourceProfile, CustomerCode: customerCode}
}
