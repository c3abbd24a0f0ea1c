// Package common provides the tabular I/O shared by the dataset loader and
// the report writer.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// ReadRecords reads every record of a delimited text source. A leading
// byte-order mark is consumed (UTF-16 sources are transcoded to UTF-8),
// rows may have a varying number of fields and stray quotes are tolerated.
func ReadRecords(r io.Reader, delimiter rune) ([][]string, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading delimited data: %w", err)
	}
	return records, nil
}

// NormalizeHeader strips surrounding whitespace from every column name.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// IsBlankRow reports whether every cell of row is empty or whitespace.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// DecodeRows maps data rows onto TRow values through gocsv using the csv
// struct tags of TRow. Rows are padded or truncated to the header width.
// Columns missing from the header leave the matching fields empty.
func DecodeRows[TRow any](header []string, rows [][]string) ([]TRow, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	for _, row := range rows {
		fixed := make([]string, len(header))
		copy(fixed, row)
		records = append(records, fixed)
	}

	var out []TRow
	if err := gocsv.UnmarshalCSV(&recordReader{records: records}, &out); err != nil {
		return nil, fmt.Errorf("error decoding rows: %w", err)
	}
	return out, nil
}

// WriteCSV marshals rows with their csv struct tags as header.
func WriteCSV[TRow any](w io.Writer, rows []TRow, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// recordReader serves already-read records through gocsv's CSVReader
// interface.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
