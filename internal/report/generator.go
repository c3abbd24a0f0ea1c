// Package report renders product tables and comparisons as an aligned text
// table, CSV, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/bank-reco/internal/common"
	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"

	"gopkg.in/yaml.v3"
)

const missingCell = "-"

// Generator writes datasets in the supported formats.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator. delimiter is used for CSV output; zero
// means ','.
func NewGenerator(logger logging.Logger, delimiter rune) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	return &Generator{
		logger:    logger.WithField(logging.FieldComponent, "report"),
		delimiter: delimiter,
	}
}

// Render writes ds as one row per product. The columns follow category:
// credit cards show fee and reward, deposit accounts add APY, ATM, mobile
// deposit and transfer details, and no category shows everything.
func (g *Generator) Render(w io.Writer, ds models.Dataset, category *models.Category, format Format) error {
	l := layoutFor(category)
	g.logger.Debug("Rendering products",
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, ds.Len()))

	switch format {
	case FormatTable:
		return g.renderTable(w, ds, l.columns())
	case FormatCSV:
		switch l {
		case layoutCard:
			return common.WriteCSV(w, mapRows(ds, toCardRow), g.delimiter)
		case layoutDeposit:
			return common.WriteCSV(w, mapRows(ds, toDepositRow), g.delimiter)
		}
		return common.WriteCSV(w, mapRows(ds, toProductRow), g.delimiter)
	case FormatJSON, FormatYAML:
		switch l {
		case layoutCard:
			return g.encode(w, mapRows(ds, toCardRow), format)
		case layoutDeposit:
			return g.encode(w, mapRows(ds, toDepositRow), format)
		}
		return g.encode(w, mapRows(ds, toProductRow), format)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// RenderComparison writes the products side by side, one column per
// product. Structured formats fall back to Render.
func (g *Generator) RenderComparison(w io.Writer, ds models.Dataset, category *models.Category, format Format) error {
	if format != FormatTable {
		return g.Render(w, ds, category, format)
	}
	if ds.Len() == 0 {
		_, err := fmt.Fprintln(w, "No products selected for comparison.")
		return err
	}

	products := ds.Products()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range layoutFor(category).columns() {
		cells := make([]string, 0, len(products)+1)
		cells = append(cells, col.header)
		for _, p := range products {
			cells = append(cells, cell(col.value(p)))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("error writing comparison: %w", err)
		}
	}
	return tw.Flush()
}

func (g *Generator) renderTable(w io.Writer, ds models.Dataset, columns []column) error {
	if ds.Len() == 0 {
		_, err := fmt.Fprintln(w, "No products match the selected criteria.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.header
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}

	for _, p := range ds.Products() {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = cell(col.value(p))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}
	}
	return tw.Flush()
}

func (g *Generator) encode(w io.Writer, rows any, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML output")
			return fmt.Errorf("failed to marshal YAML output: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON output")
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	return nil
}

func cell(s string) string {
	if s == "" {
		return missingCell
	}
	return s
}

// WriteList prints one value per line under a title, used for goal and
// option listings.
func WriteList(w io.Writer, title string, values []string) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "  - %s\n", v); err != nil {
			return err
		}
	}
	return nil
}
