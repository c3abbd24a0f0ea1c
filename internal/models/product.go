package models

import "github.com/shopspring/decimal"

// Product is one row of the product table.
type Product struct {
	// Row is the 1-based data row in source order.
	Row int

	Name     string
	Bank     string
	Category Category
	// TypeText is the raw Type cell; goals probe it by substring.
	TypeText string

	AnnualFee decimal.NullDecimal

	// InterestRateText is nil when the cell was empty or the column absent.
	InterestRateText *string
	// InterestRate is the APY in percentage points ("3.5%" -> 3.5). Always
	// finite and non-negative.
	InterestRate float64

	RewardType      *string
	ATMAccess       *string
	MobileDeposit   *string
	TransferMethods *string
	Notes           *string
}

// Attribute names a descriptive text field of a Product.
type Attribute string

const (
	AttributeRewardType      Attribute = ColumnRewardType
	AttributeATMAccess       Attribute = ColumnATMAccess
	AttributeMobileDeposit   Attribute = ColumnMobileDeposit
	AttributeTransferMethods Attribute = ColumnTransferMethods
	AttributeNotes           Attribute = ColumnNotes
)

// FilterAttributes are the attributes offered as multi-select filters.
var FilterAttributes = []Attribute{
	AttributeRewardType,
	AttributeATMAccess,
	AttributeMobileDeposit,
	AttributeTransferMethods,
}

// Value returns the attribute text and whether it is present.
func (p Product) Value(attr Attribute) (string, bool) {
	var v *string
	switch attr {
	case AttributeRewardType:
		v = p.RewardType
	case AttributeATMAccess:
		v = p.ATMAccess
	case AttributeMobileDeposit:
		v = p.MobileDeposit
	case AttributeTransferMethods:
		v = p.TransferMethods
	case AttributeNotes:
		v = p.Notes
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// HasZeroFee reports whether the annual fee is known and equal to zero.
func (p Product) HasZeroFee() bool {
	return p.AnnualFee.Valid && p.AnnualFee.Decimal.IsZero()
}

// StringPtr returns nil for empty text, otherwise a pointer to s.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
