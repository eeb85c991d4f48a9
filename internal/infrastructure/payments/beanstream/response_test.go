package beanstream

import (
	"errors"
	"testing"
)

func TestParseFlat(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		fields := parseFlat("")
		if len(fields) != 0 {
			t.Fatalf("expected empty map, got %v", fields)
		}
	})

	t.Run("decodes pairs", func(t *testing.T) {
		fields := parseFlat("trnId=100&trnAmount=12.34&messageText=Approved")
		if fields["trnId"] != "100" || fields["trnAmount"] != "12.34" || fields["messageText"] != "Approved" {
			t.Fatalf("unexpected fields: %v", fields)
		}
	})

	t.Run("percent decoding", func(t *testing.T) {
		fields := parseFlat("trnOrderNumber=ORD%20100&authCode=TEST")
		if fields["trnOrderNumber"] != "ORD 100" {
			t.Fatalf("expected decoded order number, got %q", fields["trnOrderNumber"])
		}
	})

	t.Run("missing value keeps key", func(t *testing.T) {
		fields := parseFlat("trnId=&responseType")
		if v, ok := fields["trnId"]; !ok || v != "" {
			t.Fatalf("expected empty trnId, got %q ok=%t", v, ok)
		}
		if v, ok := fields["responseType"]; !ok || v != "" {
			t.Fatalf("expected empty responseType, got %q ok=%t", v, ok)
		}
	})

	t.Run("message markup flattened", func(t *testing.T) {
		fields := parseFlat("messageText=%3CLI%3EError one%3Cbr%3EError two.%3Cbr%3E")
		if fields["messageText"] != "Error one. Error two." {
			t.Fatalf("unexpected message: %q", fields["messageText"])
		}
	})

	t.Run("idempotent on clean message", func(t *testing.T) {
		if got := cleanMessage("Error one. Error two."); got != "Error one. Error two." {
			t.Fatalf("unexpected message: %q", got)
		}
	})
}

func TestParseTree(t *testing.T) {
	t.Run("leaf fields", func(t *testing.T) {
		fields, err := parseTree("<response><code>1</code><message>Approved</message></response>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields["code"] != "1" || fields["message"] != "Approved" {
			t.Fatalf("unexpected fields: %v", fields)
		}
	})

	t.Run("nested leaves use snake keys", func(t *testing.T) {
		fields, err := parseTree("<response><account><accountId>A42</accountId><accountRef>R7</accountRef></account></response>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields["account_id"] != "A42" {
			t.Fatalf("expected account_id=A42, got %v", fields)
		}
		if fields["account_ref"] != "R7" {
			t.Fatalf("expected account_ref=R7, got %v", fields)
		}
	})

	t.Run("duplicate leaves last write wins", func(t *testing.T) {
		fields, err := parseTree("<response><code>0</code><code>1</code></response>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields["code"] != "1" {
			t.Fatalf("expected last value, got %q", fields["code"])
		}
	})

	t.Run("empty body yields empty map", func(t *testing.T) {
		fields, err := parseTree("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fields) != 0 {
			t.Fatalf("expected empty map, got %v", fields)
		}
	})

	t.Run("malformed markup", func(t *testing.T) {
		_, err := parseTree("<response><code>1")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("unexpected root", func(t *testing.T) {
		_, err := parseTree("<result><code>1</code></result>")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}
	})
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"code":       "code",
		"accountId":  "account_id",
		"accountID":  "account_id",
		"AccountRef": "account_ref",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
