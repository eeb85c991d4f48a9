package entities

import "testing"

func TestPaymentSourceConstructors(t *testing.T) {
	t.Run("card", func(t *testing.T) {
		src := CardSource(Card{Name: "Jim Smith", Number: "4030000010001234"})
		if src.Kind != SourceCard || src.Card == nil || src.BankAccount != nil {
			t.Fatalf("unexpected source: %+v", src)
		}
	})

	t.Run("bank account", func(t *testing.T) {
		src := BankAccountSource(BankAccount{AccountNumber: "1234567"})
		if src.Kind != SourceBankAccount || src.BankAccount == nil || src.Card != nil {
			t.Fatalf("unexpected source: %+v", src)
		}
	})

	t.Run("profile", func(t *testing.T) {
		src := ProfileSource("CUST42")
		if src.Kind != SourceProfile || src.CustomerCode != "CUST42" {
			t.Fatalf("unexpected source: %+v", src)
		}
	})
}

func TestCardExpiryTwoDigits(t *testing.T) {
	cases := []struct {
		month, year int
		wantM, wantY string
	}{
		{9, 2028, "09", "28"},
		{12, 2030, "12", "30"},
		{1, 2005, "01", "05"},
		{11, 26, "11", "26"},
	}
	for _, tc := range cases {
		card := Card{ExpMonth: tc.month, ExpYear: tc.year}
		m, y := card.ExpiryTwoDigits()
		if m != tc.wantM || y != tc.wantY {
			t.Fatalf("ExpiryTwoDigits(%d, %d) = %q/%q, want %q/%q", tc.month, tc.year, m, y, tc.wantM, tc.wantY)
		}
	}
}
