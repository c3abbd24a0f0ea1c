// Package recommend handles the product filtering command
package recommend

import (
	"fjacquet/bank-reco/cmd/common"
	"fjacquet/bank-reco/cmd/root"

	"github.com/spf13/cobra"
)

var (
	criteriaFlags common.CriteriaFlags
	compareNames  []string
)

// Cmd represents the recommend command
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "List the products matching a category, goal and filters",
	Long: `List the products matching every selected criterion. Filters combine with AND:
category, goal, reward type, ATM access, mobile deposit, transfer methods,
minimum APY and maximum annual fee. Products named with --compare are also
shown side by side (at most three).`,
	Run: recommendFunc,
}

func init() {
	criteriaFlags.Register(Cmd)
	Cmd.Flags().StringArrayVar(&compareNames, "compare", nil, "Product name to compare side by side (repeatable, max 3)")
}

func recommendFunc(cmd *cobra.Command, args []string) {
	criteria, err := criteriaFlags.Build()
	if err != nil {
		root.Log.Fatalf("Invalid criteria: %v", err)
	}

	if err := common.ProcessRecommendation(root.GetContainer(), criteria, compareNames, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error recommending products: %v", err)
	}
}
