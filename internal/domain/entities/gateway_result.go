package entities

// AVSResult is the address-verification outcome reported by the gateway.
type AVSResult struct {
	Code string `json:"code"`
}

// GatewayResult is the normalized outcome of one gateway call.
//
// Authorization is the composite token a later capture/refund/void presents
// to recover the original transaction; it is the only state that survives
// the call.
type GatewayResult struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	TestMode      bool              `json:"test_mode"`
	Authorization string            `json:"authorization,omitempty"`
	CVVResult     string            `json:"cvv_result,omitempty"`
	AVSResult     AVSResult         `json:"avs_result"`
}
