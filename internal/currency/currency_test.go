package currency

import (
	"testing"

	"github.com/calabashre/calabash/internal/catalog"
)

func TestCounterpartUSD(t *testing.T) {
	amount, cur := Counterpart(1000, catalog.CurrencyUSD)
	if cur != catalog.CurrencySLE {
		t.Errorf("currency = %s, want SLE", cur)
	}
	if amount != 22800 {
		t.Errorf("amount = %v, want 22800", amount)
	}
}

func TestCounterpartSLE(t *testing.T) {
	amount, cur := Counterpart(22800, catalog.CurrencySLE)
	if cur != catalog.CurrencyUSD {
		t.Errorf("currency = %s, want USD", cur)
	}
	if amount != 1000 {
		t.Errorf("amount = %v, want 1000", amount)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		price float64
		cur   catalog.Currency
		want  string
	}{
		{350000, catalog.CurrencyUSD, "$350,000"},
		{150000, catalog.CurrencySLE, "Le 150,000"},
		{2500, catalog.CurrencyUSD, "$2,500"},
		{999, catalog.CurrencyUSD, "$999"},
		{1234567.6, catalog.CurrencySLE, "Le 1,234,568"},
	}

	for _, tt := range tests {
		if got := Format(tt.price, tt.cur); got != tt.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tt.price, tt.cur, got, tt.want)
		}
	}
}
