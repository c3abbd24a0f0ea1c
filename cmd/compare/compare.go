// Package compare handles the side-by-side comparison command
package compare

import (
	"fjacquet/bank-reco/cmd/common"
	"fjacquet/bank-reco/cmd/root"

	"github.com/spf13/cobra"
)

var criteriaFlags common.CriteriaFlags

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare NAME [NAME...]",
	Short: "Compare up to three products side by side",
	Long: `Compare products side by side, one column per product. Only products that
also match the given filters are shown, and only the first three distinct
names are kept.`,
	Args: cobra.MinimumNArgs(1),
	Run:  compareFunc,
}

func init() {
	criteriaFlags.Register(Cmd)
}

func compareFunc(cmd *cobra.Command, args []string) {
	criteria, err := criteriaFlags.Build()
	if err != nil {
		root.Log.Fatalf("Invalid criteria: %v", err)
	}

	if err := common.ProcessComparison(root.GetContainer(), criteria, args, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error comparing products: %v", err)
	}
}
