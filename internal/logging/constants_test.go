package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants_Distinct(t *testing.T) {
	names := []string{
		FieldFile, FieldFormat, FieldRow, FieldColumn, FieldValue, FieldCount,
		FieldTotal, FieldCategory, FieldGoal, FieldConstraint, FieldSelected,
		FieldDelimiter, FieldComponent,
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.NotEmpty(t, n)
		assert.False(t, seen[n], "duplicate field name %q", n)
		seen[n] = true
	}
}
