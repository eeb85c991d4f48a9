package response

import (
	"time"

	"beanpay/internal/domain/entities"
)

type TransactionResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Kind          string    `json:"kind"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`
	GatewayID     string    `json:"gateway_id,omitempty"`
	Authorization string    `json:"authorization,omitempty"`
	Message       string    `json:"message,omitempty"`
	TestMode      bool      `json:"test_mode"`
	CVVResult     string    `json:"cvv_result,omitempty"`
	AVSCode       string    `json:"avs_code,omitempty"`
	Date          time.Time `json:"date"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		OrderNumber:   tx.OrderNumber,
		Kind:          string(tx.Kind),
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		GatewayID:     tx.GatewayID,
		Authorization: tx.Authorization,
		Message:       tx.Message,
		TestMode:      tx.TestMode,
		CVVResult:     tx.CVVResult,
		AVSCode:       tx.AVSCode,
		Date:          tx.Date,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}
