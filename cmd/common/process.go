// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/bank-reco/internal/container"
	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/recommend"
	"fjacquet/bank-reco/internal/report"
	"fjacquet/bank-reco/internal/store"
)

// OutputFormat returns the configured output format.
func OutputFormat(c *container.Container) (report.Format, error) {
	return report.ParseFormat(c.GetConfig().Output.Format)
}

// ProcessRecommendation loads the product table, filters it by criteria and
// writes the result. When names are given, the comparison of those products
// follows the table.
func ProcessRecommendation(c *container.Container, criteria models.Criteria, names []string, out io.Writer) error {
	format, err := OutputFormat(c)
	if err != nil {
		return err
	}

	filtered, err := filter(c, criteria)
	if err != nil {
		return err
	}

	gen := c.GetGenerator()
	if err := gen.Render(out, filtered, criteria.Category, format); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}

	if format == report.FormatTable {
		if _, err := fmt.Fprintln(out, "\nComparison:"); err != nil {
			return err
		}
	}
	return gen.RenderComparison(out, c.GetRecommender().Compare(filtered, names), criteria.Category, format)
}

// ProcessComparison writes only the side-by-side comparison of names within
// the products matching criteria.
func ProcessComparison(c *container.Container, criteria models.Criteria, names []string, out io.Writer) error {
	format, err := OutputFormat(c)
	if err != nil {
		return err
	}

	filtered, err := filter(c, criteria)
	if err != nil {
		return err
	}

	selected := c.GetRecommender().Compare(filtered, names)
	c.GetLogger().Info("Comparing products",
		logging.F(logging.FieldSelected, selected.Names()),
		logging.F(logging.FieldCount, selected.Len()))
	return c.GetGenerator().RenderComparison(out, selected, criteria.Category, format)
}

// ListGoals writes the goals offered for category together with the
// keywords each keyword-based goal looks for.
func ListGoals(c *container.Container, category *models.Category, out io.Writer) error {
	rules, err := c.GetStore().LoadRules()
	if err != nil {
		return err
	}

	var lines []string
	for _, g := range recommend.AvailableGoals(category) {
		line := fmt.Sprintf("%s (%s)", g, g.Slug())
		if keywords := rules.Keywords(g); len(keywords) > 0 {
			line += ": " + strings.Join(keywords, ", ")
		}
		lines = append(lines, line)
	}

	title := "Goals"
	if category != nil {
		title = fmt.Sprintf("Goals for %s", category.String())
	}
	return report.WriteList(out, title, lines)
}

// ListOptions writes the distinct values of every multi-select filter
// offered for category, drawn from the products of that category.
func ListOptions(c *container.Container, category *models.Category, out io.Writer) error {
	ds, err := c.LoadDataset()
	if err != nil {
		return err
	}
	if category != nil {
		ds = c.GetRecommender().Filter(ds, models.Criteria{Category: category})
	}

	for i, attr := range recommend.AvailableAttributes(category) {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := report.WriteList(out, string(attr), ds.DistinctValues(attr)); err != nil {
			return err
		}
	}
	return nil
}

func filter(c *container.Container, criteria models.Criteria) (models.Dataset, error) {
	ds, err := c.LoadDataset()
	if err != nil {
		return models.Dataset{}, err
	}
	if criteria.Category != nil && !ds.HasCategories() {
		c.GetLogger().Warn("Product table has no Type column, category filter matches nothing",
			logging.F(logging.FieldCategory, criteria.Category.String()))
	}
	return c.GetRecommender().Filter(ds, criteria), nil
}

// WriteDefaultGoals saves the built-in goal keywords to the goals file so
// they can be edited.
func WriteDefaultGoals(c *container.Container, out io.Writer) error {
	goalStore := c.GetStore()
	if err := goalStore.SaveRules(store.DefaultGoalRules()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Wrote default goal keywords to %s\n", goalStore.File)
	return err
}
