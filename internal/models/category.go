package models

import "strings"

// Category is the product family a row belongs to.
type Category string

const (
	// CategoryUnknown covers rows without a recognisable Type, including files
	// that have no Type column at all.
	CategoryUnknown    Category = ""
	CategoryCreditCard Category = "Credit Card"
	CategoryChecking   Category = "Checking"
	CategorySavings    Category = "Savings"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryCreditCard, CategoryChecking, CategorySavings}

// ParseCategory maps free Type text onto a Category. Matching ignores case,
// spaces, underscores and hyphens, so "Credit Card", "credit_card" and
// "High-Yield Savings-Plus" are all recognised.
func ParseCategory(text string) Category {
	key := normalizeKey(text)
	switch {
	case key == "":
		return CategoryUnknown
	case strings.Contains(key, "credit"):
		return CategoryCreditCard
	case strings.Contains(key, "checking"), strings.Contains(key, "chequing"):
		return CategoryChecking
	case strings.Contains(key, "saving"):
		return CategorySavings
	default:
		return CategoryUnknown
	}
}

// LookupCategory is the strict counterpart of ParseCategory used for user
// input: only the three known categories are accepted.
func LookupCategory(text string) (Category, bool) {
	c := ParseCategory(text)
	return c, c != CategoryUnknown
}

func (c Category) String() string {
	if c == CategoryUnknown {
		return "Unknown"
	}
	return string(c)
}

// IsDeposit reports whether c is a deposit account (checking or savings).
// Only deposit accounts carry ATM, mobile deposit and transfer attributes.
func (c Category) IsDeposit() bool {
	return c == CategoryChecking || c == CategorySavings
}

func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
