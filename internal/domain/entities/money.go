package entities

import (
	"github.com/shopspring/decimal"
)

// Money is a decimal monetary amount.
//
// The gateway wire format always carries amounts as strings with exactly two
// fractional digits; Money is never serialized as a binary float.
type Money struct {
	value decimal.Decimal
}

// NewMoney parses a decimal string (e.g. "12.34") into Money.
func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// NewMoneyFromCents builds Money from an integer number of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{value: decimal.New(cents, -2)}
}

// String renders the amount with two fractional digits ("10" -> "10.00").
func (m Money) String() string {
	return m.value.StringFixed(2)
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}
