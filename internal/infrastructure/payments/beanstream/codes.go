package beanstream

import "beanpay/internal/domain/entities"

// TransactionType is a semantic transaction kind mapped to a short wire code.
type TransactionType string

const (
	TransactionAuthorization TransactionType = "authorization"
	TransactionPurchase      TransactionType = "purchase"
	TransactionCapture       TransactionType = "capture"
	TransactionRefund        TransactionType = "refund"
	TransactionVoid          TransactionType = "void"
	TransactionCheckPurchase TransactionType = "check_purchase"
	TransactionCheckRefund   TransactionType = "check_refund"
	TransactionVoidPurchase  TransactionType = "void_purchase"
	TransactionVoidRefund    TransactionType = "void_refund"
)

// transactionCodes maps transaction kinds to the trnType wire codes.
// void and void_purchase share the VP code; they are kept as distinct kinds
// so void direction can be resolved from a recorded type.
var transactionCodes = map[TransactionType]string{
	TransactionAuthorization: "PA",
	TransactionPurchase:      "P",
	TransactionCapture:       "PAC",
	TransactionRefund:        "R",
	TransactionVoid:          "VP",
	TransactionCheckPurchase: "D",
	TransactionCheckRefund:   "C",
	TransactionVoidPurchase:  "VP",
	TransactionVoidRefund:    "VR",
}

// Code returns the wire code for t, or "" for an unknown kind.
func (t TransactionType) Code() string {
	return transactionCodes[t]
}

// ProfileOperation is a secure-profile API operation.
type ProfileOperation string

const (
	ProfileOperationNew    ProfileOperation = "new"
	ProfileOperationModify ProfileOperation = "modify"
)

var profileOperationCodes = map[ProfileOperation]string{
	ProfileOperationNew:    "N",
	ProfileOperationModify: "M",
}

// profileOperationCode returns the operationType wire letter; unrecognized
// operations fall back to the code for a new profile, not an error.
func profileOperationCode(op ProfileOperation) string {
	if code, ok := profileOperationCodes[op]; ok {
		return code
	}
	return profileOperationCodes[ProfileOperationNew]
}

// cvdCodes maps the gateway's numeric cvdId values to canonical CVV result
// letters (M match, N no match, I indeterminate, S service unavailable,
// U unavailable, P not processed).
var cvdCodes = map[string]string{
	"1": "M",
	"2": "N",
	"3": "I",
	"4": "S",
	"5": "U",
	"6": "P",
}

// cvvResult returns the normalized CVV letter, or "" when the wire code is
// absent or not in the table.
func cvvResult(code string) string {
	return cvdCodes[code]
}

// avsCodes maps the gateway's numeric avsId values. The table is knowingly
// sparse: any code it does not list is passed through verbatim.
var avsCodes = map[string]string{
	"0": "R",
	"5": "I",
	"9": "I",
}

// avsResult normalizes an avsId, passing unknown codes through unchanged.
func avsResult(code string) string {
	if normalized, ok := avsCodes[code]; ok {
		return normalized
	}
	return code
}

// periodCodes maps recurring interval units to rbBillingPeriod letters.
var periodCodes = map[entities.IntervalUnit]string{
	entities.IntervalDays:   "D",
	entities.IntervalWeeks:  "W",
	entities.IntervalMonths: "M",
	entities.IntervalYears:  "Y",
}

func periodCode(unit entities.IntervalUnit) string {
	return periodCodes[unit]
}
