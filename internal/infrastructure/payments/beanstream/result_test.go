package beanstream

import "testing"

func TestBuildFlatResult(t *testing.T) {
	cfg := Config{MerchantID: "merchant"}

	t.Run("responseType success with partial identity", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("responseType=R&trnId=100&trnAmount=12.34"))
		if !result.Success {
			t.Fatalf("expected success")
		}
		if result.Authorization != "100;12.34;" {
			t.Fatalf("unexpected authorization: %q", result.Authorization)
		}
		if result.Message != "" {
			t.Fatalf("expected no message, got %q", result.Message)
		}
	})

	t.Run("approved flag success", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=1&trnId=10&trnAmount=1.00&trnType=P"))
		if !result.Success {
			t.Fatalf("expected success")
		}
		if result.Authorization != "10;1.00;P" {
			t.Fatalf("unexpected authorization: %q", result.Authorization)
		}
	})

	t.Run("response code success", func(t *testing.T) {
		if !buildFlatResult(cfg, parseFlat("responseCode=1")).Success {
			t.Fatalf("expected success")
		}
	})

	t.Run("declined with fallback message", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=0&responseMessage=Declined"))
		if result.Success {
			t.Fatalf("expected failure")
		}
		if result.Message != "Declined" {
			t.Fatalf("unexpected message: %q", result.Message)
		}
	})

	t.Run("messageText preferred over responseMessage", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=0&messageText=Card declined&responseMessage=Declined"))
		if result.Message != "Card declined" {
			t.Fatalf("unexpected message: %q", result.Message)
		}
	})

	t.Run("empty response is a plain failure", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat(""))
		if result.Success || result.Message != "" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("cvv and avs normalization", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=1&cvdId=1&avsId=0"))
		if result.CVVResult != "M" {
			t.Fatalf("unexpected cvv result: %q", result.CVVResult)
		}
		if result.AVSResult.Code != "R" {
			t.Fatalf("unexpected avs result: %q", result.AVSResult.Code)
		}
	})

	t.Run("unknown avs code passes through", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=1&avsId=7"))
		if result.AVSResult.Code != "7" {
			t.Fatalf("unexpected avs result: %q", result.AVSResult.Code)
		}
	})

	t.Run("unknown cvv code is absent", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=1&cvdId=9"))
		if result.CVVResult != "" {
			t.Fatalf("unexpected cvv result: %q", result.CVVResult)
		}
	})

	t.Run("customer code aliased to vault id", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("responseCode=1&customerCode=CUST42"))
		if result.Fields["customer_vault_id"] != "CUST42" {
			t.Fatalf("expected vault alias, got %v", result.Fields)
		}
	})

	t.Run("test mode from config", func(t *testing.T) {
		result := buildFlatResult(Config{MerchantID: "merchant", TestMode: true}, parseFlat("trnApproved=1"))
		if !result.TestMode {
			t.Fatalf("expected test mode")
		}
	})

	t.Run("test mode from gateway signal", func(t *testing.T) {
		result := buildFlatResult(cfg, parseFlat("trnApproved=1&authCode=TEST"))
		if !result.TestMode {
			t.Fatalf("expected test mode")
		}
	})
}

func TestBuildTreeResult(t *testing.T) {
	cfg := Config{MerchantID: "merchant"}

	t.Run("approved", func(t *testing.T) {
		fields, err := parseTree("<response><code>1</code><message>Approved</message><accountId>A42</accountId></response>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result := buildTreeResult(cfg, fields)
		if !result.Success {
			t.Fatalf("expected success")
		}
		if result.Message != "Approved" {
			t.Fatalf("unexpected message: %q", result.Message)
		}
		if result.Authorization != "A42" {
			t.Fatalf("unexpected authorization: %q", result.Authorization)
		}
	})

	t.Run("declined", func(t *testing.T) {
		fields, err := parseTree("<response><code>5</code><message>Invalid account</message></response>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result := buildTreeResult(cfg, fields)
		if result.Success {
			t.Fatalf("expected failure")
		}
		if result.Message != "Invalid account" {
			t.Fatalf("unexpected message: %q", result.Message)
		}
	})
}
