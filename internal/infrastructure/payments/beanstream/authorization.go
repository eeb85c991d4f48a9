package beanstream

import "strings"

const authorizationSeparator = ";"

// Authorization identifies a completed transaction for follow-up
// operations. It round-trips through the wire token
// "transaction_id;amount;transaction_type" and is the only state carried
// between a charge and a later capture/refund/void.
//
// The wire format has no escaping: embedded ";" in any field is
// unsupported.
type Authorization struct {
	ID     string
	Amount string
	Type   string
}

// Encode joins the three fields into the composite wire token.
func (a Authorization) Encode() string {
	return a.ID + authorizationSeparator + a.Amount + authorizationSeparator + a.Type
}

// DecodeAuthorization splits a composite token back into its fields.
// Tokens with fewer than three segments leave the trailing fields empty
// rather than failing; downstream type resolution treats an empty type as
// a plain purchase.
func DecodeAuthorization(token string) Authorization {
	parts := strings.SplitN(token, authorizationSeparator, 3)
	auth := Authorization{}
	if len(parts) > 0 {
		auth.ID = parts[0]
	}
	if len(parts) > 1 {
		auth.Amount = parts[1]
	}
	if len(parts) > 2 {
		auth.Type = parts[2]
	}
	return auth
}
