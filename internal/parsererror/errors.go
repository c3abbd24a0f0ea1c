// Package parsererror defines the typed errors raised while reading product
// data and validating filter criteria.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRate marks an interest rate text that is not a number, with or
// without a percent sign. The dataset loader recovers it to 0.0.
var ErrMalformedRate = errors.New("malformed rate")

// ParseError represents a single field that could not be parsed.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError means the source as a whole does not have the expected
// shape, e.g. a required column is missing.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Missing        []string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid format in file '%s': %s (missing: %s). Expected: %s",
			e.FilePath, e.Msg, strings.Join(e.Missing, ", "), e.ExpectedFormat)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ValidationError reports a rejected criterion value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}
