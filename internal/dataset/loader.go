// Package dataset loads the product table and prepares it for filtering:
// column names are trimmed, empty cells become missing values and every row
// gains its numeric interest rate.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bank-reco/internal/common"
	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/parsererror"
)

// Options configures how sources are read.
type Options struct {
	// Delimiter separates fields in text sources. Zero means ','.
	Delimiter rune
	// Sheet selects the worksheet of spreadsheet sources. Empty means the
	// first sheet.
	Sheet string
}

// Loader reads product tables from delimited text or spreadsheet files.
type Loader struct {
	logger logging.Logger
	opts   Options
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger logging.Logger, opts Options) *Loader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Loader{
		logger: logger.WithField(logging.FieldComponent, "dataset"),
		opts:   opts,
	}
}

// productRow mirrors the source columns. All columns except Name and Bank
// are optional.
type productRow struct {
	Name            string `csv:"Name"`
	Bank            string `csv:"Bank"`
	Type            string `csv:"Type"`
	InterestRateAPY string `csv:"Interest_Rate_APY"`
	AnnualFee       string `csv:"Annual_Fee"`
	RewardType      string `csv:"Reward_or_Interest_Type"`
	ATMAccess       string `csv:"ATM_Access_Notes"`
	MobileDeposit   string `csv:"Mobile_Check_Deposit_Support"`
	TransferMethods string `csv:"Transfer_Methods"`
	Notes           string `csv:"Notes"`
}

// Load reads the file at path. Files ending in .xlsx are read as
// spreadsheets, everything else as delimited text. The path "-" reads
// delimited text from standard input.
func (l *Loader) Load(path string) (models.Dataset, error) {
	if path == "-" {
		return l.LoadReader(os.Stdin, "stdin")
	}

	l.logger.Info("Loading product table", logging.F(logging.FieldFile, path))

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := readSpreadsheet(path, l.opts.Sheet)
		if err != nil {
			return models.Dataset{}, err
		}
		return l.Prepare(records, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("error opening product file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return l.LoadReader(file, path)
}

// LoadReader reads delimited text from r. source names the input in errors
// and logs.
func (l *Loader) LoadReader(r io.Reader, source string) (models.Dataset, error) {
	records, err := common.ReadRecords(r, l.opts.Delimiter)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", source, err)
	}
	return l.Prepare(records, source)
}

// Prepare turns raw records (header first) into a Dataset.
func (l *Loader) Prepare(records [][]string, source string) (models.Dataset, error) {
	if len(records) == 0 {
		return models.Dataset{}, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: "header row followed by product rows",
			Msg:            "no header row",
		}
	}

	header := common.NormalizeHeader(records[0])
	if missing := missingColumns(header); len(missing) > 0 {
		return models.Dataset{}, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: "columns " + strings.Join(models.RequiredColumns, ", "),
			Missing:        missing,
			Msg:            "required columns not found",
		}
	}
	l.logOptionalColumns(header)

	var data [][]string
	var sourceRows []int
	for i, rec := range records[1:] {
		if common.IsBlankRow(rec) {
			l.logger.Debug("Skipping blank row", logging.F(logging.FieldRow, i+1))
			continue
		}
		data = append(data, rec)
		sourceRows = append(sourceRows, i+1)
	}

	rows, err := common.DecodeRows[productRow](header, data)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", source, err)
	}

	products := make([]models.Product, len(rows))
	for i, row := range rows {
		products[i] = l.toProduct(row, sourceRows[i])
	}

	l.logger.Info("Prepared product table",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldCount, len(products)))

	return models.NewDataset(products), nil
}

func (l *Loader) toProduct(row productRow, rowNum int) models.Product {
	typeText := strings.TrimSpace(row.Type)
	rateText := optional(row.InterestRateAPY)

	rate := ParseAPY(rateText)
	if rateText != nil && rate == 0 {
		if _, err := ParseAPYStrict(*rateText); err != nil {
			l.logger.WithError(err).Debug("Interest rate defaulted to 0",
				logging.F(logging.FieldRow, rowNum),
				logging.F(logging.FieldValue, *rateText))
		}
	}

	return models.Product{
		Row:              rowNum,
		Name:             strings.TrimSpace(row.Name),
		Bank:             strings.TrimSpace(row.Bank),
		Category:         models.ParseCategory(typeText),
		TypeText:         typeText,
		AnnualFee:        models.ParseFee(row.AnnualFee),
		InterestRateText: rateText,
		InterestRate:     rate,
		RewardType:       optional(row.RewardType),
		ATMAccess:        optional(row.ATMAccess),
		MobileDeposit:    optional(row.MobileDeposit),
		TransferMethods:  optional(row.TransferMethods),
		Notes:            optional(row.Notes),
	}
}

func (l *Loader) logOptionalColumns(header []string) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, col := range []string{
		models.ColumnType, models.ColumnInterestRate, models.ColumnAnnualFee,
		models.ColumnRewardType, models.ColumnATMAccess, models.ColumnMobileDeposit,
		models.ColumnTransferMethods, models.ColumnNotes,
	} {
		if !present[col] {
			l.logger.Debug("Optional column absent", logging.F(logging.FieldColumn, col))
		}
	}
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range models.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func optional(cell string) *string {
	return models.StringPtr(strings.TrimSpace(cell))
}
