package common

import (
	"fmt"
	"strings"

	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"
	"fjacquet/bank-reco/internal/recommend"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// CriteriaFlags collects the filter flags shared by recommend and compare.
type CriteriaFlags struct {
	Category    string
	Goal        string
	RewardTypes []string
	ATMAccess   []string
	Mobile      []string
	Transfer    []string
	MinAPY      float64
	MaxFee      string
}

// Register adds the filter flags to cmd.
func (f *CriteriaFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "Product category (credit-card, checking, savings)")
	cmd.Flags().StringVarP(&f.Goal, "goal", "g", "", "Goal (travel, cashback, low-fee, high-yield)")
	cmd.Flags().StringArrayVar(&f.RewardTypes, "reward-type", nil, "Reward or interest type to keep (repeatable)")
	cmd.Flags().StringArrayVar(&f.ATMAccess, "atm", nil, "ATM access value to keep, deposit accounts only (repeatable)")
	cmd.Flags().StringArrayVar(&f.Mobile, "mobile", nil, "Mobile check deposit value to keep, deposit accounts only (repeatable)")
	cmd.Flags().StringArrayVar(&f.Transfer, "transfer", nil, "Transfer methods value to keep, deposit accounts only (repeatable)")
	cmd.Flags().Float64Var(&f.MinAPY, "min-apy", 0, "Minimum interest rate in percent, 0 disables")
	cmd.Flags().StringVar(&f.MaxFee, "max-fee", "", "Maximum annual fee")
}

// Build turns the flag values into Criteria. The category is applied
// before the goal so goals are checked against the category's vocabulary.
func (f CriteriaFlags) Build() (models.Criteria, error) {
	s := recommend.NewSession()

	category, err := ParseCategoryFlag(f.Category)
	if err != nil {
		return models.Criteria{}, err
	}
	s.SelectCategory(category)

	goal, err := models.ParseGoal(f.Goal)
	if err != nil {
		return models.Criteria{}, &parsererror.ValidationError{Field: "goal", Value: f.Goal, Reason: err.Error()}
	}
	if err := s.SelectGoal(goal); err != nil {
		return models.Criteria{}, err
	}

	values := map[models.Attribute][]string{
		models.AttributeRewardType:      f.RewardTypes,
		models.AttributeATMAccess:       f.ATMAccess,
		models.AttributeMobileDeposit:   f.Mobile,
		models.AttributeTransferMethods: f.Transfer,
	}
	for _, attr := range models.FilterAttributes {
		if err := s.SetValues(attr, values[attr]); err != nil {
			return models.Criteria{}, err
		}
	}

	if err := s.SetMinRate(f.MinAPY); err != nil {
		return models.Criteria{}, err
	}

	if strings.TrimSpace(f.MaxFee) != "" {
		fee, err := decimal.NewFromString(strings.TrimSpace(f.MaxFee))
		if err != nil {
			return models.Criteria{}, &parsererror.ValidationError{Field: "max fee", Value: f.MaxFee, Reason: "not a number"}
		}
		if err := s.SetMaxFee(&fee); err != nil {
			return models.Criteria{}, err
		}
	}

	return s.Criteria(), nil
}

// ParseCategoryFlag maps a category flag onto a Category. Empty text means
// no category.
func ParseCategoryFlag(text string) (*models.Category, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	c, ok := models.LookupCategory(text)
	if !ok {
		return nil, &parsererror.ValidationError{
			Field:  "category",
			Value:  text,
			Reason: fmt.Sprintf("expected one of %s", categoryNames()),
		}
	}
	return &c, nil
}

func categoryNames() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
