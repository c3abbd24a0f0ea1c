package recommend

import (
	"fmt"

	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Session holds the selections of one interactive flow and enforces the
// coupling between category, goal and deposit-only filters.
type Session struct {
	criteria models.Criteria
}

// NewSession starts with empty criteria.
func NewSession() *Session {
	return &Session{}
}

// SelectCategory sets the category; nil clears it. A goal that is not
// offered for the new category is reset to GoalNone, and deposit-only
// filters are cleared when the new category is not a deposit account. It
// reports whether the goal was reset.
func (s *Session) SelectCategory(category *models.Category) bool {
	if category != nil {
		c := *category
		category = &c
	}
	s.criteria.Category = category

	if category == nil || !category.IsDeposit() {
		s.criteria.ATMAccess = nil
		s.criteria.MobileDeposit = nil
		s.criteria.TransferMethods = nil
	}

	reconciled := ReconcileGoal(category, s.criteria.Goal)
	reset := reconciled != s.criteria.Goal
	s.criteria.Goal = reconciled
	return reset
}

// SelectGoal sets the goal if the current category offers it.
func (s *Session) SelectGoal(g models.Goal) error {
	if !IsGoalAvailable(s.criteria.Category, g) {
		return &parsererror.ValidationError{
			Field:  "goal",
			Value:  g.String(),
			Reason: fmt.Sprintf("not offered for category %s", categoryLabel(s.criteria.Category)),
		}
	}
	s.criteria.Goal = g
	return nil
}

// SetValues sets the chosen values of a multi-select filter. An empty list
// deactivates it.
func (s *Session) SetValues(attr models.Attribute, values []string) error {
	if DepositOnly(attr) && len(values) > 0 &&
		(s.criteria.Category == nil || !s.criteria.Category.IsDeposit()) {
		return &parsererror.ValidationError{
			Field:  string(attr),
			Value:  fmt.Sprint(values),
			Reason: "only offered for checking and savings accounts",
		}
	}

	cp := append([]string(nil), values...)
	switch attr {
	case models.AttributeRewardType:
		s.criteria.RewardTypes = cp
	case models.AttributeATMAccess:
		s.criteria.ATMAccess = cp
	case models.AttributeMobileDeposit:
		s.criteria.MobileDeposit = cp
	case models.AttributeTransferMethods:
		s.criteria.TransferMethods = cp
	default:
		return &parsererror.ValidationError{Field: "filter", Value: string(attr), Reason: "not a selectable filter"}
	}
	return nil
}

// SetMinRate sets the minimum APY in percentage points; 0 deactivates it.
func (s *Session) SetMinRate(rate float64) error {
	if rate < 0 {
		return &parsererror.ValidationError{Field: "min rate", Value: fmt.Sprint(rate), Reason: "must not be negative"}
	}
	s.criteria.MinRate = rate
	return nil
}

// SetMaxFee sets the maximum annual fee; nil deactivates it.
func (s *Session) SetMaxFee(fee *decimal.Decimal) error {
	if fee == nil {
		s.criteria.MaxFee = nil
		return nil
	}
	if fee.IsNegative() {
		return &parsererror.ValidationError{Field: "max fee", Value: fee.String(), Reason: "must not be negative"}
	}
	f := *fee
	s.criteria.MaxFee = &f
	return nil
}

// Criteria returns a snapshot that later changes to the session do not
// affect.
func (s *Session) Criteria() models.Criteria {
	c := s.criteria
	if c.Category != nil {
		cat := *c.Category
		c.Category = &cat
	}
	if c.MaxFee != nil {
		fee := *c.MaxFee
		c.MaxFee = &fee
	}
	c.RewardTypes = append([]string(nil), c.RewardTypes...)
	c.ATMAccess = append([]string(nil), c.ATMAccess...)
	c.MobileDeposit = append([]string(nil), c.MobileDeposit...)
	c.TransferMethods = append([]string(nil), c.TransferMethods...)
	return c
}
