package beanstream

import "beanpay/internal/domain/entities"

// The flat dialect reports success through three alternative signals from
// different API generations; any one suffices.
func flatSuccess(fields map[string]string) bool {
	return fields["responseType"] == "R" ||
		fields["trnApproved"] == "1" ||
		fields["responseCode"] == "1"
}

func treeSuccess(fields map[string]string) bool {
	return fields["code"] == "1"
}

func flatMessage(fields map[string]string) string {
	if message := fields["messageText"]; message != "" {
		return message
	}
	return fields["responseMessage"]
}

func treeMessage(fields map[string]string) string {
	return fields["message"]
}

// flatAuthorization builds the composite token from the response's
// transaction identity. Absent fields become empty segments so the token
// stays three-part.
func flatAuthorization(fields map[string]string) string {
	return Authorization{
		ID:     fields["trnId"],
		Amount: fields["trnAmount"],
		Type:   fields["trnType"],
	}.Encode()
}

// treeAuthorization: the recurring API addresses accounts, not
// transactions, so its authorization is the account id leaf.
func treeAuthorization(fields map[string]string) string {
	return fields["account_id"]
}

// testMode is true in a test-configured gateway, or whenever the gateway
// itself flags the response as a test one; the wire signal wins over local
// configuration.
func testMode(cfg Config, fields map[string]string) bool {
	return cfg.TestMode || fields["authCode"] == "TEST"
}

// buildFlatResult interprets a flat-dialect field map into the normalized
// result. A response carrying a customerCode also surfaces it under the
// customer_vault_id alias in the raw fields.
func buildFlatResult(cfg Config, fields map[string]string) entities.GatewayResult {
	if code, ok := fields["customerCode"]; ok && code != "" {
		fields["customer_vault_id"] = code
	}
	return entities.GatewayResult{
		Success:       flatSuccess(fields),
		Message:       flatMessage(fields),
		Fields:        fields,
		TestMode:      testMode(cfg, fields),
		Authorization: flatAuthorization(fields),
		CVVResult:     cvvResult(fields["cvdId"]),
		AVSResult:     entities.AVSResult{Code: avsResult(fields["avsId"])},
	}
}

func buildTreeResult(cfg Config, fields map[string]string) entities.GatewayResult {
	return entities.GatewayResult{
		Success:       treeSuccess(fields),
		Message:       treeMessage(fields),
		Fields:        fields,
		TestMode:      testMode(cfg, fields),
		Authorization: treeAuthorization(fields),
		CVVResult:     cvvResult(fields["cvdId"]),
		AVSResult:     entities.AVSResult{Code: avsResult(fields["avsId"])},
	}
}
