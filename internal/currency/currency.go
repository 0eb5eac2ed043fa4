// Package currency converts and formats listing prices for display.
//
// Conversion is display-only: filtering and storage always use the price in
// its original currency.
package currency

import (
	"fmt"
	"strings"

	"github.com/calabashre/calabash/internal/catalog"
)

// USDToSLE is the simulated USD to new-Leone conversion rate.
const USDToSLE = 22.8

// Counterpart returns the price converted to the other currency.
func Counterpart(price float64, c catalog.Currency) (float64, catalog.Currency) {
	if c == catalog.CurrencyUSD {
		return price * USDToSLE, catalog.CurrencySLE
	}
	return price / USDToSLE, catalog.CurrencyUSD
}

// Format renders a price with its currency symbol and comma grouping,
// rounded to whole units: "$350,000" or "Le 150,000".
func Format(price float64, c catalog.Currency) string {
	symbol := "$"
	if c == catalog.CurrencySLE {
		symbol = "Le "
	}
	return symbol + groupThousands(int64(price+0.5))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
