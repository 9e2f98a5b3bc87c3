package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCurrencyRounding_AllPrecisions tests rounding for configured currencies
func TestCurrencyRounding_AllPrecisions(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		currency    string
		expected    string
		description string
	}{
		{
			name:        "KES_RoundHalfUp",
			amount:      "3247.805",
			currency:    "kes",
			expected:    "3247.81",
			description: "KES rounds half up to 2 decimals",
		},
		{
			name:        "KES_RoundDown",
			amount:      "32.478",
			currency:    "kes",
			expected:    "32.48",
			description: "KES rounds 32.478 to 32.48",
		},
		{
			name:        "USD_Standard",
			amount:      "10.275",
			currency:    "usd",
			expected:    "10.28",
			description: "USD rounds to 2 decimals",
		},
		{
			name:        "UGX_NoDecimals",
			amount:      "1000.5",
			currency:    "ugx",
			expected:    "1001",
			description: "UGX rounds to 0 decimals (no fractional shilling)",
		},
		{
			name:        "JPY_NoDecimals",
			amount:      "1023.45",
			currency:    "jpy",
			expected:    "1023",
			description: "JPY rounds to 0 decimals",
		},
		{
			name:        "Unknown_DefaultsToTwo",
			amount:      "5.005",
			currency:    "xyz",
			expected:    "5.01",
			description: "unknown currencies default to 2 decimals",
		},
		{
			name:        "CaseInsensitive",
			amount:      "1.005",
			currency:    " KES ",
			expected:    "1.01",
			description: "currency codes are trimmed and case-insensitive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			expected := decimal.RequireFromString(tt.expected)

			rounded := RoundToCurrencyPrecision(amount, tt.currency)

			assert.True(t, rounded.Equal(expected),
				"%s: expected %s, got %s", tt.description, expected, rounded)
		})
	}
}

func TestGetCurrencyPrecision(t *testing.T) {
	assert.Equal(t, 2, GetCurrencyPrecision("kes"))
	assert.Equal(t, 0, GetCurrencyPrecision("UGX"))
	assert.Equal(t, 2, GetCurrencyPrecision("unknown"))
}
