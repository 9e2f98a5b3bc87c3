package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the billing currency when none is configured.
const DefaultCurrency = "kes"

// currencyPrecision maps lowercase ISO currency codes to their number of
// minor-unit decimals. Currencies without an entry use two decimals.
var currencyPrecision = map[string]int{
	"kes": 2,
	"usd": 2,
	"eur": 2,
	"gbp": 2,
	"ugx": 0,
	"tzs": 2,
	"jpy": 0,
	"krw": 0,
}

// GetCurrencyPrecision returns the number of decimals for a currency code.
func GetCurrencyPrecision(currency string) int {
	if p, ok := currencyPrecision[strings.ToLower(strings.TrimSpace(currency))]; ok {
		return p
	}
	return 2
}

// RoundToCurrencyPrecision rounds an amount half-up to the currency's
// minor unit. Bill components keep full precision internally; this is the
// presentation-boundary helper callers round with.
func RoundToCurrencyPrecision(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(int32(GetCurrencyPrecision(currency)))
}
