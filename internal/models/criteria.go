package models

import "github.com/shopspring/decimal"

// Criteria is a snapshot of the user's current selections. Zero values are
// inactive: a nil Category, GoalNone, empty value lists, a MinRate of 0 and
// a nil MaxFee add no restriction.
type Criteria struct {
	Category *Category
	Goal     Goal

	RewardTypes     []string
	ATMAccess       []string
	MobileDeposit   []string
	TransferMethods []string

	// MinRate is the lowest acceptable APY in percentage points.
	MinRate float64
	// MaxFee is the highest acceptable annual fee.
	MaxFee *decimal.Decimal
}

// IsEmpty reports whether c restricts nothing.
func (c Criteria) IsEmpty() bool {
	return c.Category == nil &&
		c.Goal == GoalNone &&
		len(c.RewardTypes) == 0 &&
		len(c.ATMAccess) == 0 &&
		len(c.MobileDeposit) == 0 &&
		len(c.TransferMethods) == 0 &&
		c.MinRate <= 0 &&
		c.MaxFee == nil
}

// Selected returns the chosen values for a multi-select attribute.
func (c Criteria) Selected(attr Attribute) []string {
	switch attr {
	case AttributeRewardType:
		return c.RewardTypes
	case AttributeATMAccess:
		return c.ATMAccess
	case AttributeMobileDeposit:
		return c.MobileDeposit
	case AttributeTransferMethods:
		return c.TransferMethods
	}
	return nil
}

// CategoryPtr is a helper for building Criteria literals.
func CategoryPtr(c Category) *Category {
	return &c
}
