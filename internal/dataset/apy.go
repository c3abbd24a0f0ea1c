package dataset

import (
	"math"
	"strings"

	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"

	"github.com/shopspring/decimal"
)

// maxRateExponent bounds the decimal exponent of a rate. Larger exponents are
// out of float64 range and expensive to expand.
const maxRateExponent = 400

// ParseAPY converts Interest_Rate_APY text into percentage points:
// "3.5%" and "3.5" both give 3.5. Missing or malformed text gives 0.0.
// ParseAPY never fails and never returns a negative or non-finite value.
func ParseAPY(text *string) float64 {
	if text == nil {
		return 0
	}
	rate, err := ParseAPYStrict(*text)
	if err != nil {
		return 0
	}
	return rate
}

// ParseAPYStrict is ParseAPY with the failure reported. The error is a
// *parsererror.ParseError wrapping parsererror.ErrMalformedRate.
func ParseAPYStrict(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if strings.Contains(s, "%") {
		s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	}

	dec, err := decimal.NewFromString(s)
	if err != nil || dec.Exponent() > maxRateExponent || dec.Exponent() < -maxRateExponent {
		return 0, malformedRate(text)
	}
	rate := dec.InexactFloat64()
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, malformedRate(text)
	}
	return rate, nil
}

func malformedRate(text string) error {
	return &parsererror.ParseError{
		Parser: "apy",
		Field:  models.ColumnInterestRate,
		Value:  text,
		Err:    parsererror.ErrMalformedRate,
	}
}
