// Package goals handles the goal listing command
package goals

import (
	"fjacquet/bank-reco/cmd/common"
	"fjacquet/bank-reco/cmd/root"

	"github.com/spf13/cobra"
)

var (
	category  string
	writeFile bool
)

// Cmd represents the goals command
var Cmd = &cobra.Command{
	Use:   "goals",
	Short: "List the goals offered for a category",
	Long: `List the goals offered for a category and the reward keywords the travel and
cashback goals look for. With --init the built-in keywords are written to the
goals file so they can be customised.`,
	Run: goalsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Product category (credit-card, checking, savings)")
	Cmd.Flags().BoolVar(&writeFile, "init", false, "Write the default goal keywords to the goals file")
}

func goalsFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()

	if writeFile {
		if err := common.WriteDefaultGoals(c, cmd.OutOrStdout()); err != nil {
			root.Log.Fatalf("Error writing goals file: %v", err)
		}
		return
	}

	cat, err := common.ParseCategoryFlag(category)
	if err != nil {
		root.Log.Fatalf("Invalid category: %v", err)
	}
	if err := common.ListGoals(c, cat, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error listing goals: %v", err)
	}
}
