package models

import "fmt"

// Goal is a named user intent that narrows the recommendations.
type Goal int

const (
	GoalNone Goal = iota
	GoalTravelRewards
	GoalCashbackValue
	GoalLowFeeSimplicity
	GoalHighYieldSavings
)

// Goals lists every goal in display order.
var Goals = []Goal{
	GoalNone,
	GoalTravelRewards,
	GoalCashbackValue,
	GoalLowFeeSimplicity,
	GoalHighYieldSavings,
}

var goalNames = map[Goal]string{
	GoalNone:             "None",
	GoalTravelRewards:    "Travel Rewards",
	GoalCashbackValue:    "Cashback Value",
	GoalLowFeeSimplicity: "Low-Fee Simplicity",
	GoalHighYieldSavings: "High-Yield Savings",
}

var goalSlugs = map[Goal]string{
	GoalNone:             "none",
	GoalTravelRewards:    "travel",
	GoalCashbackValue:    "cashback",
	GoalLowFeeSimplicity: "low-fee",
	GoalHighYieldSavings: "high-yield",
}

func (g Goal) String() string {
	if name, ok := goalNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Goal(%d)", int(g))
}

// Slug is the short command-line name of the goal.
func (g Goal) Slug() string {
	if slug, ok := goalSlugs[g]; ok {
		return slug
	}
	return "none"
}

// ParseGoal accepts a display name ("Travel Rewards") or a slug ("travel",
// "low-fee"), ignoring case, spaces, underscores and hyphens. Empty text is
// GoalNone.
func ParseGoal(text string) (Goal, error) {
	key := normalizeKey(text)
	if key == "" {
		return GoalNone, nil
	}
	for _, g := range Goals {
		if key == normalizeKey(goalNames[g]) || key == normalizeKey(goalSlugs[g]) {
			return g, nil
		}
	}
	return GoalNone, fmt.Errorf("unknown goal %q", text)
}
