package recommend

import (
	"fmt"

	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"
)

// goalsByCategory is the goal vocabulary offered for each category.
// CategoryUnknown stands for "no category selected".
var goalsByCategory = map[models.Category][]models.Goal{
	models.CategoryUnknown: {
		models.GoalNone, models.GoalTravelRewards, models.GoalCashbackValue, models.GoalLowFeeSimplicity,
	},
	models.CategoryCreditCard: {
		models.GoalNone, models.GoalTravelRewards, models.GoalCashbackValue, models.GoalLowFeeSimplicity,
	},
	models.CategoryChecking: {
		models.GoalNone, models.GoalLowFeeSimplicity,
	},
	models.CategorySavings: {
		models.GoalNone, models.GoalLowFeeSimplicity, models.GoalHighYieldSavings,
	},
}

// AvailableGoals returns the goals selectable for category, in display
// order. A nil category means no category is selected.
func AvailableGoals(category *models.Category) []models.Goal {
	key := models.CategoryUnknown
	if category != nil {
		key = *category
	}
	goals := goalsByCategory[key]
	out := make([]models.Goal, len(goals))
	copy(out, goals)
	return out
}

// IsGoalAvailable reports whether g may be chosen for category.
func IsGoalAvailable(category *models.Category, g models.Goal) bool {
	for _, candidate := range AvailableGoals(category) {
		if candidate == g {
			return true
		}
	}
	return false
}

// ReconcileGoal returns g when it is offered for category and GoalNone
// otherwise.
func ReconcileGoal(category *models.Category, g models.Goal) models.Goal {
	if IsGoalAvailable(category, g) {
		return g
	}
	return models.GoalNone
}

// DepositOnly reports whether attr is only offered for deposit accounts.
func DepositOnly(attr models.Attribute) bool {
	switch attr {
	case models.AttributeATMAccess, models.AttributeMobileDeposit, models.AttributeTransferMethods:
		return true
	}
	return false
}

// AvailableAttributes returns the multi-select filters offered for
// category.
func AvailableAttributes(category *models.Category) []models.Attribute {
	attrs := []models.Attribute{models.AttributeRewardType}
	if category != nil && category.IsDeposit() {
		attrs = append(attrs,
			models.AttributeATMAccess,
			models.AttributeMobileDeposit,
			models.AttributeTransferMethods)
	}
	return attrs
}

// Validate checks that c only uses goals and filters offered for its
// category.
func Validate(c models.Criteria) error {
	if !IsGoalAvailable(c.Category, c.Goal) {
		return &parsererror.ValidationError{
			Field:  "goal",
			Value:  c.Goal.String(),
			Reason: fmt.Sprintf("not offered for category %s", categoryLabel(c.Category)),
		}
	}
	for _, attr := range models.FilterAttributes {
		if DepositOnly(attr) && len(c.Selected(attr)) > 0 && (c.Category == nil || !c.Category.IsDeposit()) {
			return &parsererror.ValidationError{
				Field:  string(attr),
				Value:  fmt.Sprint(c.Selected(attr)),
				Reason: "only offered for checking and savings accounts",
			}
		}
	}
	if c.MinRate < 0 {
		return &parsererror.ValidationError{Field: "min rate", Value: fmt.Sprint(c.MinRate), Reason: "must not be negative"}
	}
	if c.MaxFee != nil && c.MaxFee.IsNegative() {
		return &parsererror.ValidationError{Field: "max fee", Value: c.MaxFee.String(), Reason: "must not be negative"}
	}
	return nil
}

func categoryLabel(c *models.Category) string {
	if c == nil {
		return "(none)"
	}
	return c.String()
}
