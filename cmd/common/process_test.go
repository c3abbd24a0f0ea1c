package common_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/bank-reco/cmd/common"
	"fjacquet/bank-reco/internal/config"
	"fjacquet/bank-reco/internal/container"
	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsCSV = `Name,Bank,Type,Interest_Rate_APY,Annual_Fee,Reward_or_Interest_Type,ATM_Access_Notes,Mobile_Check_Deposit_Support,Transfer_Methods,Notes
Sky Miles,Alpha,Credit Card,,95,Travel miles,,,,
Cash Plus,Beta,Credit Card,,0,cashback bonus,,,,
Everyday,Gamma,Checking,0.1%,0,Interest,Nationwide,Yes,ACH,
Saver Plus,Delta,High-Yield Savings-Plus,1.2%,0,Interest,None,Yes,ACH,Online only
Basic Saver,Delta,Savings,0.5%,5,Interest,Regional,No,Wire,
`

func newContainer(t *testing.T, format string) *container.Container {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(file, []byte(productsCSV), 0600))

	cfg := &config.Config{
		Log:       config.LogConfig{Level: "info", Format: "text"},
		Data:      config.DataConfig{File: file},
		CSV:       config.CSVConfig{Delimiter: ","},
		Recommend: config.RecommendConfig{MaxCompare: 3, HighYieldThreshold: 1, GoalsFile: filepath.Join(dir, "goals.yaml")},
		Output:    config.OutputConfig{Format: format},
	}
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestProcessRecommendation_Table(t *testing.T) {
	c := newContainer(t, "table")
	criteria := models.Criteria{
		Category: models.CategoryPtr(models.CategorySavings),
		Goal:     models.GoalHighYieldSavings,
	}

	var out bytes.Buffer
	require.NoError(t, common.ProcessRecommendation(c, criteria, nil, &out))

	assert.Contains(t, out.String(), "Saver Plus")
	assert.NotContains(t, out.String(), "Basic Saver")
	assert.NotContains(t, out.String(), "Comparison:")
}

func TestProcessRecommendation_WithComparison(t *testing.T) {
	c := newContainer(t, "table")
	criteria := models.Criteria{Goal: models.GoalLowFeeSimplicity}

	var out bytes.Buffer
	require.NoError(t, common.ProcessRecommendation(c, criteria, []string{"Everyday", "Cash Plus"}, &out))

	parts := strings.SplitN(out.String(), "Comparison:", 2)
	require.Len(t, parts, 2)
	header := strings.SplitN(strings.TrimSpace(parts[1]), "\n", 2)[0]
	assert.Less(t, strings.Index(header, "Cash Plus"), strings.Index(header, "Everyday"))
}

func TestProcessComparison_JSON(t *testing.T) {
	c := newContainer(t, "json")

	var out bytes.Buffer
	names := []string{"Basic Saver", "Sky Miles", "Everyday", "Cash Plus"}
	require.NoError(t, common.ProcessComparison(c, models.Criteria{}, names, &out))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Sky Miles", got[0]["name"])
	assert.Equal(t, "Everyday", got[1]["name"])
	assert.Equal(t, "Basic Saver", got[2]["name"])
}

func TestProcessComparison_OutsideFilter(t *testing.T) {
	c := newContainer(t, "table")
	criteria := models.Criteria{Category: models.CategoryPtr(models.CategoryCreditCard)}

	var out bytes.Buffer
	require.NoError(t, common.ProcessComparison(c, criteria, []string{"Basic Saver"}, &out))
	assert.Contains(t, out.String(), "No products selected")
}

func TestProcessRecommendation_BadFormat(t *testing.T) {
	c := newContainer(t, "xml")
	assert.Error(t, common.ProcessRecommendation(c, models.Criteria{}, nil, &bytes.Buffer{}))
}

func TestListGoals(t *testing.T) {
	c := newContainer(t, "table")

	var out bytes.Buffer
	require.NoError(t, common.ListGoals(c, models.CategoryPtr(models.CategorySavings), &out))

	assert.Contains(t, out.String(), "Goals for Savings:")
	assert.Contains(t, out.String(), "High-Yield Savings (high-yield)")
	assert.NotContains(t, out.String(), "Travel Rewards")

	out.Reset()
	require.NoError(t, common.ListGoals(c, nil, &out))
	assert.Contains(t, out.String(), "Travel Rewards (travel): travel, miles, point")
}

func TestListOptions(t *testing.T) {
	c := newContainer(t, "table")

	var out bytes.Buffer
	require.NoError(t, common.ListOptions(c, models.CategoryPtr(models.CategorySavings), &out))
	assert.Contains(t, out.String(), models.ColumnATMAccess+":\n  - None\n  - Regional\n")
	assert.Contains(t, out.String(), models.ColumnTransferMethods+":\n  - ACH\n  - Wire\n")

	out.Reset()
	require.NoError(t, common.ListOptions(c, nil, &out))
	assert.Contains(t, out.String(), "cashback bonus")
	assert.NotContains(t, out.String(), models.ColumnATMAccess)
}

func TestWriteDefaultGoals(t *testing.T) {
	c := newContainer(t, "table")

	var out bytes.Buffer
	require.NoError(t, common.WriteDefaultGoals(c, &out))
	assert.Contains(t, out.String(), "goals.yaml")

	data, err := os.ReadFile(c.GetConfig().Recommend.GoalsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "travel:")
}
