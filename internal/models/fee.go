package models

import (
	"strings"

	"fjacquet/bank-reco/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// ParseFee converts Annual_Fee text into an amount. Currency symbols, codes
// and thousands separators are accepted. Empty, non-numeric or negative text
// yields an invalid (absent) fee.
func ParseFee(text string) decimal.NullDecimal {
	if strings.TrimSpace(text) == "" {
		return decimal.NullDecimal{}
	}

	dec, err := currencyutils.ParseAmount(text)
	if err != nil || dec.IsNegative() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(dec)
}

// FormatFee renders a fee with two decimals, or "" when absent.
func FormatFee(fee decimal.NullDecimal) string {
	if !fee.Valid {
		return ""
	}
	return currencyutils.FormatAmount(fee.Decimal, "")
}
