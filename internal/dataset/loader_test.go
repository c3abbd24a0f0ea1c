package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

const productsCSV = "\xEF\xBB\xBF Name , Bank ,Type,Interest_Rate_APY,Annual_Fee,Reward_or_Interest_Type,ATM_Access_Notes,Mobile_Check_Deposit_Support,Transfer_Methods,Notes\n" +
	"Sky Miles,Acme,Credit Card,,95,travel miles,,,,\n" +
	"Cash Back Plus,Acme,Credit Card,,0,Cashback bonus,,,,\n" +
	",,,,,,,,,\n" +
	"Everyday Checking,Beta,Checking,0.01%,0,,Nationwide,Yes,Zelle,Popular\n" +
	"Grow Savings,Beta,Savings,4.25%,0,Interest,Limited,Yes,ACH,\n" +
	"Odd Savings,Gamma,Savings,n/a,,Interest,,,,\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load_CSV(t *testing.T) {
	path := writeFile(t, "bank_products.csv", productsCSV)
	loader := NewLoader(logging.NewMockLogger(), Options{})

	ds, err := loader.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())

	assert.Equal(t, []string{"Sky Miles", "Cash Back Plus", "Everyday Checking", "Grow Savings", "Odd Savings"}, ds.Names())

	card := ds.At(0)
	assert.Equal(t, 1, card.Row)
	assert.Equal(t, "Acme", card.Bank)
	assert.Equal(t, models.CategoryCreditCard, card.Category)
	assert.Nil(t, card.InterestRateText)
	assert.Equal(t, 0.0, card.InterestRate)
	assert.Equal(t, "95.00", models.FormatFee(card.AnnualFee))
	require.NotNil(t, card.RewardType)
	assert.Equal(t, "travel miles", *card.RewardType)
	assert.Nil(t, card.ATMAccess)

	checking := ds.At(2)
	assert.Equal(t, 4, checking.Row, "row numbers count the skipped blank row")
	assert.Equal(t, models.CategoryChecking, checking.Category)
	assert.InDelta(t, 0.01, checking.InterestRate, 1e-9)
	v, ok := checking.Value(models.AttributeTransferMethods)
	assert.True(t, ok)
	assert.Equal(t, "Zelle", v)

	savings := ds.At(3)
	assert.Equal(t, 4.25, savings.InterestRate)

	odd := ds.At(4)
	assert.Equal(t, 0.0, odd.InterestRate)
	require.NotNil(t, odd.InterestRateText)
	assert.Equal(t, "n/a", *odd.InterestRateText)
	assert.False(t, odd.AnnualFee.Valid)
}

func TestLoader_LogsMalformedRate(t *testing.T) {
	mock := logging.NewMockLogger()
	loader := NewLoader(mock, Options{})

	_, err := loader.LoadReader(strings.NewReader(productsCSV), "inline")
	require.NoError(t, err)

	debug := mock.GetEntriesByLevel("DEBUG")
	var found bool
	for _, e := range debug {
		if e.Message == "Interest rate defaulted to 0" {
			found = true
			assert.True(t, errors.Is(e.Error, parsererror.ErrMalformedRate))
			assert.Contains(t, e.Fields, logging.F(logging.FieldRow, 6))
		}
	}
	assert.True(t, found)
	assert.True(t, mock.HasEntry("INFO", "Prepared product table"))
}

func TestLoader_EarliestVariantWithoutType(t *testing.T) {
	input := "Name,Bank,Annual_Fee,Reward_or_Interest_Type\nVoyager,Acme,0,Travel\n"
	ds, err := NewLoader(nil, Options{}).LoadReader(strings.NewReader(input), "inline")
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, models.CategoryUnknown, ds.At(0).Category)
	assert.False(t, ds.HasCategories())
	assert.True(t, ds.At(0).HasZeroFee())
}

func TestLoader_MissingRequiredColumn(t *testing.T) {
	_, err := NewLoader(nil, Options{}).LoadReader(strings.NewReader("Product,Type\nx,Savings\n"), "bad.csv")
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, []string{"Name", "Bank"}, formatErr.Missing)
	assert.Equal(t, "bad.csv", formatErr.FilePath)
}

func TestLoader_EmptyInput(t *testing.T) {
	_, err := NewLoader(nil, Options{}).LoadReader(strings.NewReader(""), "empty.csv")
	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestLoader_HeaderOnly(t *testing.T) {
	ds, err := NewLoader(nil, Options{}).LoadReader(strings.NewReader("Name,Bank\n"), "inline")
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoader_Delimiter(t *testing.T) {
	input := "Name;Bank;Interest_Rate_APY\nSaver;Beta;2,5\nPlus;Beta;3.5%\n"
	ds, err := NewLoader(nil, Options{Delimiter: ';'}).LoadReader(strings.NewReader(input), "inline")
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 0.0, ds.At(0).InterestRate, "comma decimals are not numbers")
	assert.Equal(t, 3.5, ds.At(1).InterestRate)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(nil, Options{}).Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				row.AddCell().SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestLoader_Load_XLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Products": {
			{"Name ", "Bank", "Type", "Interest_Rate_APY"},
			{"Grow Savings", "Beta", "Savings", "4.1%"},
		},
	})

	ds, err := NewLoader(nil, Options{Sheet: "Products"}).Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Grow Savings", ds.At(0).Name)
	assert.Equal(t, 4.1, ds.At(0).InterestRate)

	_, err = NewLoader(nil, Options{Sheet: "Missing"}).Load(path)
	assert.Error(t, err)

	ds, err = NewLoader(nil, Options{}).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}
