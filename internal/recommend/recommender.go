// Package recommend filters the prepared product table by the user's
// criteria and narrows the result to a side-by-side comparison.
//
// Every call recomputes from the Dataset it is given; nothing is cached
// between calls.
package recommend

import (
	"strings"

	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/store"
)

// Options tunes the recommender.
type Options struct {
	// HighYieldThreshold is the APY in percentage points a savings product
	// must exceed for the High-Yield Savings goal.
	HighYieldThreshold float64
	// MaxCompare caps the comparison selection. Values outside 1..3 are
	// replaced by models.DefaultMaxCompare.
	MaxCompare int
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		HighYieldThreshold: models.DefaultHighYieldThreshold,
		MaxCompare:         models.DefaultMaxCompare,
	}
}

// Recommender evaluates Criteria against a Dataset.
type Recommender struct {
	logger logging.Logger
	rules  store.GoalRules
	opts   Options
}

// NewRecommender creates a Recommender. A nil logger discards output.
func NewRecommender(logger logging.Logger, rules store.GoalRules, opts Options) *Recommender {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if opts.MaxCompare < 1 || opts.MaxCompare > models.DefaultMaxCompare {
		opts.MaxCompare = models.DefaultMaxCompare
	}
	if opts.HighYieldThreshold < 0 {
		opts.HighYieldThreshold = models.DefaultHighYieldThreshold
	}
	return &Recommender{
		logger: logger.WithField(logging.FieldComponent, "recommend"),
		rules:  rules,
		opts:   opts,
	}
}

// MaxCompare returns the effective comparison cap.
func (r *Recommender) MaxCompare() int {
	return r.opts.MaxCompare
}

// Constraints returns the active constraints of c in evaluation order.
func (r *Recommender) Constraints(c models.Criteria) []Constraint {
	var out []Constraint

	if c.Category != nil {
		out = append(out, categoryConstraint{category: *c.Category})
	}
	for _, attr := range models.FilterAttributes {
		if values := c.Selected(attr); len(values) > 0 {
			out = append(out, newMembership(attr, values))
		}
	}
	if c.MinRate > 0 {
		out = append(out, minRateConstraint{min: c.MinRate})
	}
	if c.MaxFee != nil {
		out = append(out, maxFeeConstraint{max: *c.MaxFee})
	}

	switch c.Goal {
	case models.GoalTravelRewards, models.GoalCashbackValue:
		out = append(out, newKeyword(c.Goal, r.rules.Keywords(c.Goal)))
	case models.GoalLowFeeSimplicity:
		out = append(out, zeroFeeConstraint{})
	case models.GoalHighYieldSavings:
		out = append(out, highYieldConstraint{threshold: r.opts.HighYieldThreshold})
	case models.GoalNone:
	}

	return out
}

// Filter returns the products of ds satisfying every active constraint of
// c, in their original order. Empty criteria return ds unchanged.
func (r *Recommender) Filter(ds models.Dataset, c models.Criteria) models.Dataset {
	result := ds
	for _, constraint := range r.Constraints(c) {
		result = result.Where(constraint.Match)
		r.logger.Debug("Applied constraint",
			logging.F(logging.FieldConstraint, constraint.Name()),
			logging.F(logging.FieldCount, result.Len()))
	}

	r.logger.Info("Filtered products",
		logging.F(logging.FieldGoal, c.Goal.String()),
		logging.F(logging.FieldCount, result.Len()),
		logging.F(logging.FieldTotal, ds.Len()))
	return result
}

// Selection normalises a comparison choice: names are trimmed, blanks and
// repeats dropped, and only the first MaxCompare names kept.
func (r *Recommender) Selection(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, r.opts.MaxCompare)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		if len(out) == r.opts.MaxCompare {
			r.logger.Warn("Comparison selection truncated",
				logging.F(logging.FieldSelected, out),
				logging.F("dropped", n))
			continue
		}
		out = append(out, n)
	}
	return out
}

// Compare returns the rows of filtered whose name was selected, in filtered
// order. Each selected name contributes at most its first row, so the
// result never holds more than MaxCompare rows. Names absent from filtered
// are ignored.
func (r *Recommender) Compare(filtered models.Dataset, names []string) models.Dataset {
	wanted := make(map[string]bool)
	for _, n := range r.Selection(names) {
		wanted[n] = true
	}

	taken := make(map[string]bool, len(wanted))
	result := filtered.Where(func(p models.Product) bool {
		if !wanted[p.Name] || taken[p.Name] {
			return false
		}
		taken[p.Name] = true
		return true
	})

	if result.Len() < len(wanted) {
		r.logger.Debug("Some selected products are not in the filtered result",
			logging.F(logging.FieldSelected, len(wanted)),
			logging.F(logging.FieldCount, result.Len()))
	}
	return result
}
