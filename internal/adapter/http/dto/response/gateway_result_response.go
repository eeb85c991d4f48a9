package response

import "beanpay/internal/domain/entities"

// GatewayResultResponse is the wire shape for operations returning a raw
// gateway outcome (subscription update/cancel, profile create/update).
type GatewayResultResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message,omitempty"`
	Authorization string            `json:"authorization,omitempty"`
	CustomerCode  string            `json:"customer_code,omitempty"`
	TestMode      bool              `json:"test_mode"`
	CVVResult     string            `json:"cvv_result,omitempty"`
	AVSCode       string            `json:"avs_code,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
}

func FromGatewayResult(r entities.GatewayResult) GatewayResultResponse {
	return GatewayResultResponse{
		Success:       r.Success,
		Message:       r.Message,
		Authorization: r.Authorization,
		CustomerCode:  r.Fields["customer_vault_id"],
		TestMode:      r.TestMode,
		CVVResult:     r.CVVResult,
		AVSCode:       r.AVSResult.Code,
		Fields:        r.Fields,
	}
}
