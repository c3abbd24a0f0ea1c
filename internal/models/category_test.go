package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"Credit Card", CategoryCreditCard},
		{"CreditCard", CategoryCreditCard},
		{"credit_card", CategoryCreditCard},
		{"Checking", CategoryChecking},
		{"Checking Account", CategoryChecking},
		{"Savings", CategorySavings},
		{"High-Yield Savings-Plus", CategorySavings},
		{"  savings account ", CategorySavings},
		{"", CategoryUnknown},
		{"Mortgage", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.input))
		})
	}
}

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory("savings")
	assert.True(t, ok)
	assert.Equal(t, CategorySavings, c)

	_, ok = LookupCategory("brokerage")
	assert.False(t, ok)
}

func TestCategory_IsDeposit(t *testing.T) {
	assert.False(t, CategoryCreditCard.IsDeposit())
	assert.True(t, CategoryChecking.IsDeposit())
	assert.True(t, CategorySavings.IsDeposit())
	assert.False(t, CategoryUnknown.IsDeposit())
	assert.Equal(t, "Unknown", CategoryUnknown.String())
}
