package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleProducts() models.Dataset {
	rate := "2.5%"
	return models.NewDataset([]models.Product{
		{
			Row: 1, Name: "Sky Miles", Bank: "Alpha", Category: models.CategoryCreditCard,
			TypeText: "Credit Card", AnnualFee: models.ParseFee("95"),
			RewardType: models.StringPtr("Travel miles"),
		},
		{
			Row: 2, Name: "Saver", Bank: "Beta", Category: models.CategorySavings,
			TypeText: "Savings", AnnualFee: models.ParseFee("0"),
			InterestRateText: &rate, InterestRate: 2.5,
			RewardType: models.StringPtr("Interest"), ATMAccess: models.StringPtr("None"),
		},
	})
}

func TestGenerator_RenderTable(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger(), 0)
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, sampleProducts(), nil, FormatTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], models.ColumnName)
	assert.Contains(t, lines[0], "APY")
	assert.Contains(t, lines[1], "Sky Miles")
	assert.Contains(t, lines[1], "95.00")
	assert.Contains(t, lines[2], "2.5%")
}

func TestGenerator_RenderTable_CardColumns(t *testing.T) {
	g := NewGenerator(nil, 0)
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, sampleProducts(), models.CategoryPtr(models.CategoryCreditCard), FormatTable))
	assert.NotContains(t, buf.String(), models.ColumnATMAccess)
	assert.NotContains(t, buf.String(), "APY")
}

func TestGenerator_RenderTable_Empty(t *testing.T) {
	g := NewGenerator(nil, 0)
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, models.NewDataset(nil), nil, FormatTable))
	assert.Contains(t, buf.String(), "No products match")
}

func TestGenerator_RenderCSV(t *testing.T) {
	g := NewGenerator(nil, ';')
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, sampleProducts(), models.CategoryPtr(models.CategorySavings), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Name;Bank;Type;Interest_Rate_APY;APY"))
	assert.Contains(t, lines[2], "Saver;Beta;Savings;2.5%;2.5;0.00")
}

func TestGenerator_RenderJSON(t *testing.T) {
	g := NewGenerator(nil, 0)
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, sampleProducts(), nil, FormatJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Sky Miles", got[0]["name"])
	assert.Equal(t, "Credit Card", got[0]["category"])
	assert.Equal(t, 2.5, got[1]["apy"])
	assert.NotContains(t, got[0], "atm_access")
}

func TestGenerator_RenderYAML(t *testing.T) {
	g := NewGenerator(nil, 0)
	var buf bytes.Buffer

	require.NoError(t, g.Render(&buf, sampleProducts(), models.CategoryPtr(models.CategoryCreditCard), FormatYAML))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Travel miles", got[0]["reward_type"])
	assert.Equal(t, "95.00", got[0]["annual_fee"])
}

func TestGenerator_RenderUnsupported(t *testing.T) {
	g := NewGenerator(nil, 0)
	assert.Error(t, g.Render(&bytes.Buffer{}, sampleProducts(), nil, Format("xml")))
}

func TestGenerator_RenderComparison(t *testing.T) {
	g := NewGenerator(nil, 0)
	var buf bytes.Buffer

	require.NoError(t, g.RenderComparison(&buf, sampleProducts(), nil, FormatTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], models.ColumnName))
	assert.Contains(t, lines[0], "Sky Miles")
	assert.Contains(t, lines[0], "Saver")
	assert.Contains(t, lines[6], "-")
}

func TestGenerator_RenderComparison_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewGenerator(nil, 0).RenderComparison(&buf, models.NewDataset(nil), nil, FormatTable))
	assert.Contains(t, buf.String(), "No products selected")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"CSV", FormatCSV, false},
		{" json ", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"", FormatTable, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, "Goals", []string{"None", "Travel Rewards"}))
	assert.Equal(t, "Goals:\n  - None\n  - Travel Rewards\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteList(&buf, "Values", nil))
	assert.Equal(t, "Values:\n  (none)\n", buf.String())
}
