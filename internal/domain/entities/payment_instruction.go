package entities

import "time"

// IntervalUnit is the calendar unit of a recurring billing interval.
type IntervalUnit string

const (
	IntervalDays   IntervalUnit = "days"
	IntervalWeeks  IntervalUnit = "weeks"
	IntervalMonths IntervalUnit = "months"
	IntervalYears  IntervalUnit = "years"
)

// Address is a billing or shipping address sent with a payment.
type Address struct {
	Name             string
	Phone            string
	Address1         string
	Address2         string
	City             string
	Province         string
	PostalCode       string
	Country          string
	ShippingMethod   string
	DeliveryEstimate string
}

// InvoiceDetail carries optional order pricing breakdown fields.
type InvoiceDetail struct {
	Subtotal      *Money
	ShippingPrice *Money
	Tax1          *Money
	Tax2          *Money
}

// RecurringSchedule defines a recurring billing interval and duration.
//
// Occurrences of zero means open-ended (no expiry is sent).
type RecurringSchedule struct {
	Unit        IntervalUnit
	Length      int
	StartDate   time.Time
	Occurrences int
	EndOfMonth  bool
	ApplyTax1   bool
}

// PaymentInstruction is everything a charge (authorize/purchase) needs:
// the amount, the payment source and the optional order detail.
type PaymentInstruction struct {
	Amount      Money
	Source      PaymentSource
	OrderNumber string
	Description string
	Email       string
	Custom      string
	Billing     *Address
	Shipping    *Address
	Invoice     *InvoiceDetail
	Recurring   *RecurringSchedule
}

// ProfileInstruction describes a secure-profile create or modify call.
type ProfileInstruction struct {
	Source         PaymentSource
	Billing        *Address
	Email          string
	CardValidation bool
	Status         string
}
