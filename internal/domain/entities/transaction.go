package entities

import "time"

// TransactionStatus represents the gateway outcome persisted with a record.
type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusDeclined TransactionStatus = "declined"
)

// TransactionKind is the operation that produced the record.
type TransactionKind string

const (
	TransactionKindAuthorize TransactionKind = "authorize"
	TransactionKindPurchase  TransactionKind = "purchase"
	TransactionKindCapture   TransactionKind = "capture"
	TransactionKindRefund    TransactionKind = "refund"
	TransactionKindVoid      TransactionKind = "void"
	TransactionKindRecurring TransactionKind = "recurring"
)

// Transaction is the per-call record persisted after each gateway operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//
// Authorization keeps the gateway's composite token so follow-up operations
// (capture/refund/void) can be addressed by our own record ID; the gateway
// itself stays stateless.
type Transaction struct {
	ID            string            `json:"id"`
	OrderNumber   string            `json:"order_number"`
	Kind          TransactionKind   `json:"kind"`
	Status        TransactionStatus `json:"status"`
	Amount        string            `json:"amount"`
	GatewayID     string            `json:"gateway_id,omitempty"`
	Authorization string            `json:"authorization,omitempty"`
	Message       string            `json:"message,omitempty"`
	TestMode      bool              `json:"test_mode"`
	CVVResult     string            `json:"cvv_result,omitempty"`
	AVSCode       string            `json:"avs_code,omitempty"`
	Date          time.Time         `json:"date"`
}
