package report

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat accepts a format name in any case. "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}
