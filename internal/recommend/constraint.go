package recommend

import (
	"fmt"
	"strings"

	"fjacquet/bank-reco/internal/models"

	"github.com/shopspring/decimal"
)

// Constraint is one active restriction on the product table. Constraints
// are combined with AND semantics.
type Constraint interface {
	// Name identifies the constraint in logs.
	Name() string
	// Match reports whether p satisfies the constraint. A missing value on
	// the probed field never matches.
	Match(p models.Product) bool
}

type categoryConstraint struct {
	category models.Category
}

func (c categoryConstraint) Name() string { return "category=" + c.category.String() }

func (c categoryConstraint) Match(p models.Product) bool {
	return p.Category == c.category
}

// membershipConstraint keeps rows whose attribute equals one of the chosen
// values exactly.
type membershipConstraint struct {
	attr    models.Attribute
	allowed map[string]bool
}

func newMembership(attr models.Attribute, values []string) membershipConstraint {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return membershipConstraint{attr: attr, allowed: allowed}
}

func (c membershipConstraint) Name() string { return "in:" + string(c.attr) }

func (c membershipConstraint) Match(p models.Product) bool {
	v, ok := p.Value(c.attr)
	return ok && c.allowed[v]
}

type minRateConstraint struct {
	min float64
}

func (c minRateConstraint) Name() string { return fmt.Sprintf("apy>=%g", c.min) }

func (c minRateConstraint) Match(p models.Product) bool {
	return p.InterestRate >= c.min
}

type maxFeeConstraint struct {
	max decimal.Decimal
}

func (c maxFeeConstraint) Name() string { return "fee<=" + c.max.String() }

func (c maxFeeConstraint) Match(p models.Product) bool {
	return p.AnnualFee.Valid && p.AnnualFee.Decimal.LessThanOrEqual(c.max)
}

// keywordConstraint keeps rows whose reward/interest type contains any of
// the keywords, ignoring case.
type keywordConstraint struct {
	goal     models.Goal
	keywords []string
}

func newKeyword(goal models.Goal, keywords []string) keywordConstraint {
	lower := make([]string, 0, len(keywords))
	for _, k := range keywords {
		lower = append(lower, strings.ToLower(k))
	}
	return keywordConstraint{goal: goal, keywords: lower}
}

func (c keywordConstraint) Name() string { return "goal:" + c.goal.Slug() }

func (c keywordConstraint) Match(p models.Product) bool {
	if p.RewardType == nil {
		return false
	}
	text := strings.ToLower(*p.RewardType)
	for _, k := range c.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

type zeroFeeConstraint struct{}

func (zeroFeeConstraint) Name() string { return "goal:" + models.GoalLowFeeSimplicity.Slug() }

func (zeroFeeConstraint) Match(p models.Product) bool {
	return p.HasZeroFee()
}

// highYieldConstraint keeps savings rows paying strictly more than the
// threshold, in percentage points.
type highYieldConstraint struct {
	threshold float64
}

func (c highYieldConstraint) Name() string { return "goal:" + models.GoalHighYieldSavings.Slug() }

func (c highYieldConstraint) Match(p models.Product) bool {
	return strings.Contains(strings.ToLower(p.TypeText), "savings") && p.InterestRate > c.threshold
}
