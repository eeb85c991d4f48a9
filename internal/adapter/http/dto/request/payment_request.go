package request

import (
	"errors"
	"time"

	"beanpay/internal/domain/entities"
)

var (
	ErrAmountInvalid       = errors.New("amount must be a positive decimal string")
	ErrSourceRequired      = errors.New("exactly one of card, bank_account or customer_code is required")
	ErrIntervalUnitInvalid = errors.New("recurring unit must be days, weeks, months or years")
	ErrStartDateInvalid    = errors.New("recurring start_date must be YYYY-MM-DD")
	ErrStartDateRequired   = errors.New("recurring start_date is required")
)

// startDateLayout is the accepted recurring start date format.
const startDateLayout = "2006-01-02"

type CardRequest struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVD      string `json:"cvd,omitempty"`
}

type BankAccountRequest struct {
	InstitutionNumber string `json:"institution_number,omitempty"`
	TransitNumber     string `json:"transit_number,omitempty"`
	RoutingNumber     string `json:"routing_number,omitempty"`
	AccountNumber     string `json:"account_number"`
}

type AddressRequest struct {
	Name             string `json:"name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address1         string `json:"address1,omitempty"`
	Address2         string `json:"address2,omitempty"`
	City             string `json:"city,omitempty"`
	Province         string `json:"province,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	Country          string `json:"country,omitempty"`
	ShippingMethod   string `json:"shipping_method,omitempty"`
	DeliveryEstimate string `json:"delivery_estimate,omitempty"`
}

type InvoiceRequest struct {
	Subtotal      *string `json:"subtotal,omitempty"`
	ShippingPrice *string `json:"shipping_price,omitempty"`
	Tax1          *string `json:"tax1,omitempty"`
	Tax2          *string `json:"tax2,omitempty"`
}

type RecurringRequest struct {
	Unit        string `json:"unit"`
	Length      int    `json:"length"`
	StartDate   string `json:"start_date,omitempty"`
	Occurrences int    `json:"occurrences,omitempty"`
	EndOfMonth  bool   `json:"end_of_month,omitempty"`
	ApplyTax1   bool   `json:"apply_tax1,omitempty"`
}

// PaymentCreateRequest is the payload for purchase, authorize and
// subscription-create routes. Exactly one payment source must be set.
type PaymentCreateRequest struct {
	Amount      string `json:"amount"`
	OrderNumber string `json:"order_number,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Custom      string `json:"custom,omitempty"`

	Card         *CardRequest        `json:"card,omitempty"`
	BankAccount  *BankAccountRequest `json:"bank_account,omitempty"`
	CustomerCode string              `json:"customer_code,omitempty"`

	Billing   *AddressRequest   `json:"billing,omitempty"`
	Shipping  *AddressRequest   `json:"shipping,omitempty"`
	Invoice   *InvoiceRequest   `json:"invoice,omitempty"`
	Recurring *RecurringRequest `json:"recurring,omitempty"`
}

// AmountRequest is the payload for capture, refund and subscription-update
// routes.
type AmountRequest struct {
	Amount string `json:"amount"`
}

func (r AmountRequest) ToMoney() (entities.Money, error) {
	return parseAmount(r.Amount)
}

func (r PaymentCreateRequest) ToInstruction() (entities.PaymentInstruction, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return entities.PaymentInstruction{}, err
	}
	source, err := toSource(r.Card, r.BankAccount, r.CustomerCode)
	if err != nil {
		return entities.PaymentInstruction{}, err
	}
	invoice, err := toInvoice(r.Invoice)
	if err != nil {
		return entities.PaymentInstruction{}, err
	}
	recurring, err := toRecurring(r.Recurring)
	if err != nil {
		return entities.PaymentInstruction{}, err
	}

	return entities.PaymentInstruction{
		Amount:      amount,
		Source:      source,
		OrderNumber: r.OrderNumber,
		Description: r.Description,
		Email:       r.Email,
		Custom:      r.Custom,
		Billing:     toAddress(r.Billing),
		Shipping:    toAddress(r.Shipping),
		Invoice:     invoice,
		Recurring:   recurring,
	}, nil
}

func parseAmount(raw string) (entities.Money, error) {
	amount, err := entities.NewMoney(raw)
	if err != nil {
		return entities.Money{}, ErrAmountInvalid
	}
	if amount.IsZero() || amount.IsNegative() {
		return entities.Money{}, ErrAmountInvalid
	}
	return amount, nil
}

func toSource(card *CardRequest, account *BankAccountRequest, customerCode string) (entities.PaymentSource, error) {
	set := 0
	if card != nil {
		set++
	}
	if account != nil {
		set++
	}
	if customerCode != "" {
		set++
	}
	if set != 1 {
		return entities.PaymentSource{}, ErrSourceRequired
	}

	switch {
	case card != nil:
		return entities.CardSource(entities.Card{
			Name:     card.Name,
			Number:   card.Number,
			ExpMonth: card.ExpMonth,
			ExpYear:  card.ExpYear,
			CVD:      card.CVD,
		}), nil
	case account != nil:
		return entities.BankAccountSource(entities.BankAccount{
			InstitutionNumber: account.InstitutionNumber,
			TransitNumber:     account.TransitNumber,
			RoutingNumber:     account.RoutingNumber,
			AccountNumber:     account.AccountNumber,
		}), nil
	default:
		return entities.ProfileSource(customerCode), nil
	}
}

func toAddress(a *AddressRequest) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		Name:             a.Name,
		Phone:            a.Phone,
		Address1:         a.Address1,
		Address2:         a.Address2,
		City:             a.City,
		Province:         a.Province,
		PostalCode:       a.PostalCode,
		Country:          a.Country,
		ShippingMethod:   a.ShippingMethod,
		DeliveryEstimate: a.DeliveryEstimate,
	}
}

func toInvoice(inv *InvoiceRequest) (*entities.InvoiceDetail, error) {
	if inv == nil {
		return nil, nil
	}
	out := &entities.InvoiceDetail{}
	fields := []struct {
		raw  *string
		dest **entities.Money
	}{
		{inv.Subtotal, &out.Subtotal},
		{inv.ShippingPrice, &out.ShippingPrice},
		{inv.Tax1, &out.Tax1},
		{inv.Tax2, &out.Tax2},
	}
	for _, f := range fields {
		if f.raw == nil {
			continue
		}
		m, err := entities.NewMoney(*f.raw)
		if err != nil {
			return nil, ErrAmountInvalid
		}
		*f.dest = &m
	}
	return out, nil
}

func toRecurring(rec *RecurringRequest) (*entities.RecurringSchedule, error) {
	if rec == nil {
		return nil, nil
	}
	unit := entities.IntervalUnit(rec.Unit)
	switch unit {
	case entities.IntervalDays, entities.IntervalWeeks, entities.IntervalMonths, entities.IntervalYears:
	default:
		return nil, ErrIntervalUnitInvalid
	}

	// The gateway serializes the first billing date unconditionally, so an
	// omitted date cannot be let through as the zero time.
	if rec.StartDate == "" {
		return nil, ErrStartDateRequired
	}
	start, err := time.Parse(startDateLayout, rec.StartDate)
	if err != nil {
		return nil, ErrStartDateInvalid
	}

	return &entities.RecurringSchedule{
		Unit:        unit,
		Length:      rec.Length,
		StartDate:   start,
		Occurrences: rec.Occurrences,
		EndOfMonth:  rec.EndOfMonth,
		ApplyTax1:   rec.ApplyTax1,
	}, nil
}
