package beanstream

import (
	"time"

	"beanpay/internal/domain/entities"
)

// Wire date format for recurring billing fields (MMDDYYYY).
const wireDateFormat = "01022006"

const (
	spServiceVersion        = "1.1"
	recurringServiceVersion = "1.0"
)

// The field groups below each write a disjoint subset of wire fields onto
// the parameter set, mirroring the gateway's parameter vocabulary. They are
// pure: composition order does not matter.

func addAmount(p params, amount entities.Money) {
	p.set("trnAmount", amount.String())
}

// addOriginalAmount writes an amount already rendered by a prior
// transaction (as recovered from an authorization token).
func addOriginalAmount(p params, amount string) {
	p.set("trnAmount", amount)
}

func addReference(p params, reference string) {
	p.set("adjId", reference)
}

func addTransactionType(p params, t TransactionType) {
	p.set("trnType", t.Code())
}

// addAddress writes the billing and shipping address groups. Both addresses
// are first normalized for non-North-American countries: the gateway
// requires a 2-character province and a postal code for every address, so
// outside US/CA the province is forced to "--" and a missing postal code is
// defaulted to "000000".
func addAddress(p params, email string, billing, shipping *entities.Address) {
	if billing != nil {
		addr := normalizeAddress(*billing)
		p.set("ordName", addr.Name)
		p.set("ordEmailAddress", email)
		p.set("ordPhoneNumber", addr.Phone)
		p.set("ordAddress1", addr.Address1)
		p.set("ordAddress2", addr.Address2)
		p.set("ordCity", addr.City)
		p.set("ordProvince", addr.Province)
		p.set("ordPostalCode", addr.PostalCode)
		p.set("ordCountry", addr.Country)
	}
	if shipping != nil {
		addr := normalizeAddress(*shipping)
		p.set("shipName", addr.Name)
		p.set("shipEmailAddress", email)
		p.set("shipPhoneNumber", addr.Phone)
		p.set("shipAddress1", addr.Address1)
		p.set("shipAddress2", addr.Address2)
		p.set("shipCity", addr.City)
		p.set("shipProvince", addr.Province)
		p.set("shipPostalCode", addr.PostalCode)
		p.set("shipCountry", addr.Country)
		p.set("shippingMethod", addr.ShippingMethod)
		p.set("deliveryEstimate", addr.DeliveryEstimate)
	}
}

func normalizeAddress(addr entities.Address) entities.Address {
	if addr.Country == "US" || addr.Country == "CA" {
		return addr
	}
	addr.Province = "--"
	if addr.PostalCode == "" {
		addr.PostalCode = "000000"
	}
	return addr
}

func addInvoice(p params, instr entities.PaymentInstruction) {
	p.set("trnOrderNumber", instr.OrderNumber)
	p.set("trnComments", instr.Description)
	p.set("ref1", instr.Custom)
	if instr.Invoice == nil {
		return
	}
	if instr.Invoice.Subtotal != nil {
		p.set("ordItemPrice", instr.Invoice.Subtotal.String())
	}
	if instr.Invoice.ShippingPrice != nil {
		p.set("ordShippingPrice", instr.Invoice.ShippingPrice.String())
	}
	if instr.Invoice.Tax1 != nil {
		p.set("ordTax1Price", instr.Invoice.Tax1.String())
	}
	if instr.Invoice.Tax2 != nil {
		p.set("ordTax2Price", instr.Invoice.Tax2.String())
	}
}

// addSource dispatches exhaustively on the payment-source variant.
func addSource(p params, source entities.PaymentSource) {
	switch source.Kind {
	case entities.SourceProfile:
		p.set("customerCode", source.CustomerCode)
	case entities.SourceBankAccount:
		if source.BankAccount != nil {
			addBankAccount(p, *source.BankAccount)
		}
	case entities.SourceCard:
		if source.Card != nil {
			addCard(p, *source.Card)
		}
	}
}

func addCard(p params, card entities.Card) {
	month, year := card.ExpiryTwoDigits()
	p.set("trnCardOwner", card.Name)
	p.set("trnCardNumber", card.Number)
	p.set("trnExpMonth", month)
	p.set("trnExpYear", year)
	p.set("trnCardCvd", card.CVD)
}

func addBankAccount(p params, account entities.BankAccount) {
	p.set("institutionNumber", account.InstitutionNumber)
	p.set("transitNumber", account.TransitNumber)
	p.set("routingNumber", account.RoutingNumber)
	p.set("accountNumber", account.AccountNumber)
}

// addRecurring writes the recurring schedule group: interval letter and
// increment, the first billing date, and, when an occurrence count is given,
// the schedule expiry advanced by that many billing periods. The advancement
// is calendar-aware per interval unit, not a fixed-length duration.
func addRecurring(p params, schedule *entities.RecurringSchedule) {
	if schedule == nil {
		return
	}
	p.set("trnRecurring", "1")
	p.set("rbBillingPeriod", periodCode(schedule.Unit))
	p.setInt("rbBillingIncrement", schedule.Length)
	p.set("rbFirstBilling", schedule.StartDate.Format(wireDateFormat))
	if schedule.Occurrences > 0 {
		expiry := advancePeriods(schedule.StartDate, schedule.Unit, schedule.Length*schedule.Occurrences)
		p.set("rbExpiry", expiry.Format(wireDateFormat))
	}
	p.setFlag("rbEndMonth", schedule.EndOfMonth)
	p.setFlag("rbApplyTax1", schedule.ApplyTax1)
}

// advancePeriods moves a date forward by n interval units on the calendar.
func advancePeriods(start time.Time, unit entities.IntervalUnit, n int) time.Time {
	switch unit {
	case entities.IntervalDays:
		return start.AddDate(0, 0, n)
	case entities.IntervalWeeks:
		return start.AddDate(0, 0, 7*n)
	case entities.IntervalYears:
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, n, 0)
	}
}

// addRecurringAmount writes the amount field used by the recurring API,
// which differs from the transaction API's trnAmount.
func addRecurringAmount(p params, amount entities.Money) {
	p.set("amount", amount.String())
}

// addRecurringService writes the recurring API service envelope: version,
// credentials and the account being addressed.
func addRecurringService(p params, cfg Config, accountID string) {
	p.set("serviceVersion", recurringServiceVersion)
	p.set("merchantId", cfg.MerchantID)
	p.set("passCode", cfg.Passcode)
	p.set("rbAccountId", accountID)
}

// recurringOperationCodes maps recurring account operations to the
// operationType wire letters used by the recurring API.
var recurringOperationCodes = map[string]string{
	"update": "M",
	"cancel": "C",
}

func addRecurringOperation(p params, operation string) {
	p.set("operationType", recurringOperationCodes[operation])
}

// addSecureProfile writes the secure-profile envelope. customerCode is only
// present on modify calls; an absent code is omitted, never sent as a
// placeholder value.
func addSecureProfile(p params, op ProfileOperation, customerCode string, instr entities.ProfileInstruction) {
	p.set("serviceVersion", spServiceVersion)
	p.set("responseFormat", "QS")
	if instr.CardValidation {
		p.set("cardValidation", "1")
	} else {
		p.set("cardValidation", "0")
	}
	p.set("operationType", profileOperationCode(op))
	p.set("customerCode", customerCode)
	p.set("status", instr.Status)
}

// finalize injects the transport-identification fields every request
// carries and serializes the parameter set. The profile endpoint
// authenticates with merchantId/passCode; the transaction and recurring
// endpoints use merchant_id plus the optional username/password pair. Both
// feature-disable flags are mandatory on the wire.
func finalize(cfg Config, endpoint Endpoint, p params) string {
	p.set("requestType", "BACKEND")
	if endpoint == EndpointProfile {
		p.set("merchantId", cfg.MerchantID)
		p.set("passCode", cfg.ProfilePasscode)
	} else {
		p.set("username", cfg.Username)
		p.set("password", cfg.Password)
		p.set("merchant_id", cfg.MerchantID)
	}
	p["vbvEnabled"] = "0"
	p["scEnabled"] = "0"
	return p.encode()
}
