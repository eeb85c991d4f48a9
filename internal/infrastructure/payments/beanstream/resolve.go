package beanstream

import "beanpay/internal/domain/entities"

// The three resolvers below are pure functions of already-known type
// codes; no lookup against the gateway is ever needed.

// purchaseType: bank accounts charge through the cheque-purchase type,
// everything else through the generic purchase type.
func purchaseType(source entities.PaymentSource) TransactionType {
	if source.Kind == entities.SourceBankAccount {
		return TransactionCheckPurchase
	}
	return TransactionPurchase
}

// voidType: voiding a refund must go in the opposite direction from
// voiding a charge. originalType is the wire code recorded in the
// authorization token.
func voidType(originalType string) TransactionType {
	if originalType == TransactionRefund.Code() {
		return TransactionVoidRefund
	}
	return TransactionVoidPurchase
}

// refundType: a cheque purchase can only be reversed by a cheque refund,
// never the generic card refund.
func refundType(originalType string) TransactionType {
	if originalType == TransactionCheckPurchase.Code() {
		return TransactionCheckRefund
	}
	return TransactionRefund
}
