// Package options handles the filter value listing command
package options

import (
	"fjacquet/bank-reco/cmd/common"
	"fjacquet/bank-reco/cmd/root"

	"github.com/spf13/cobra"
)

var category string

// Cmd represents the options command
var Cmd = &cobra.Command{
	Use:   "options",
	Short: "List the values available for each filter",
	Long: `List the distinct values found in the product table for each multi-select
filter. ATM access, mobile deposit and transfer methods are only listed for
checking and savings accounts.`,
	Run: optionsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Product category (credit-card, checking, savings)")
}

func optionsFunc(cmd *cobra.Command, args []string) {
	cat, err := common.ParseCategoryFlag(category)
	if err != nil {
		root.Log.Fatalf("Invalid category: %v", err)
	}
	if err := common.ListOptions(root.GetContainer(), cat, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error listing options: %v", err)
	}
}
