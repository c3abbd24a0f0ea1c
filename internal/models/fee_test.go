package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFee(t *testing.T) {
	tests := []struct {
		input string
		valid bool
		want  string
	}{
		{"0", true, "0.00"},
		{"95", true, "95.00"},
		{"$550", true, "550.00"},
		{" 1,250.50 USD ", true, "1250.50"},
		{"", false, ""},
		{"N/A", false, ""},
		{"-5", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fee := ParseFee(tt.input)
			assert.Equal(t, tt.valid, fee.Valid)
			assert.Equal(t, tt.want, FormatFee(fee))
		})
	}
}

func TestProduct_HasZeroFee(t *testing.T) {
	assert.True(t, Product{AnnualFee: ParseFee("0")}.HasZeroFee())
	assert.False(t, Product{AnnualFee: ParseFee("95")}.HasZeroFee())
	assert.False(t, Product{}.HasZeroFee(), "absent fee is not zero")
}
