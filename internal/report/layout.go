package report

import (
	"strconv"

	"fjacquet/bank-reco/internal/models"
)

// layout decides which columns are shown.
type layout int

const (
	layoutAll layout = iota
	layoutCard
	layoutDeposit
)

func layoutFor(category *models.Category) layout {
	switch {
	case category == nil:
		return layoutAll
	case *category == models.CategoryCreditCard:
		return layoutCard
	case category.IsDeposit():
		return layoutDeposit
	}
	return layoutAll
}

type column struct {
	header string
	value  func(models.Product) string
}

func (l layout) columns() []column {
	name := column{models.ColumnName, func(p models.Product) string { return p.Name }}
	bank := column{models.ColumnBank, func(p models.Product) string { return p.Bank }}
	typ := column{models.ColumnType, func(p models.Product) string { return p.TypeText }}
	fee := column{models.ColumnAnnualFee, func(p models.Product) string { return models.FormatFee(p.AnnualFee) }}
	apy := column{"APY", formatRate}
	reward := column{models.ColumnRewardType, text(models.AttributeRewardType)}
	atm := column{models.ColumnATMAccess, text(models.AttributeATMAccess)}
	mobile := column{models.ColumnMobileDeposit, text(models.AttributeMobileDeposit)}
	transfer := column{models.ColumnTransferMethods, text(models.AttributeTransferMethods)}
	notes := column{models.ColumnNotes, text(models.AttributeNotes)}

	if l == layoutCard {
		return []column{name, bank, typ, fee, reward, notes}
	}
	return []column{name, bank, typ, apy, fee, reward, atm, mobile, transfer, notes}
}

func text(attr models.Attribute) func(models.Product) string {
	return func(p models.Product) string {
		v, _ := p.Value(attr)
		return v
	}
}

// formatRate shows the derived APY, or nothing when the source cell was
// empty.
func formatRate(p models.Product) string {
	if p.InterestRateText == nil {
		return ""
	}
	return strconv.FormatFloat(p.InterestRate, 'f', -1, 64) + "%"
}

// cardRow, depositRow and productRow are the structured views of a product
// used by the csv, json and yaml encoders.
type cardRow struct {
	Name       string `csv:"Name" json:"name" yaml:"name"`
	Bank       string `csv:"Bank" json:"bank" yaml:"bank"`
	Type       string `csv:"Type" json:"type,omitempty" yaml:"type,omitempty"`
	AnnualFee  string `csv:"Annual_Fee" json:"annual_fee,omitempty" yaml:"annual_fee,omitempty"`
	RewardType string `csv:"Reward_or_Interest_Type" json:"reward_type,omitempty" yaml:"reward_type,omitempty"`
	Notes      string `csv:"Notes" json:"notes,omitempty" yaml:"notes,omitempty"`
}

type depositRow struct {
	Name            string  `csv:"Name" json:"name" yaml:"name"`
	Bank            string  `csv:"Bank" json:"bank" yaml:"bank"`
	Type            string  `csv:"Type" json:"type,omitempty" yaml:"type,omitempty"`
	InterestRateAPY string  `csv:"Interest_Rate_APY" json:"interest_rate_apy,omitempty" yaml:"interest_rate_apy,omitempty"`
	APY             float64 `csv:"APY" json:"apy" yaml:"apy"`
	AnnualFee       string  `csv:"Annual_Fee" json:"annual_fee,omitempty" yaml:"annual_fee,omitempty"`
	RewardType      string  `csv:"Reward_or_Interest_Type" json:"interest_type,omitempty" yaml:"interest_type,omitempty"`
	ATMAccess       string  `csv:"ATM_Access_Notes" json:"atm_access,omitempty" yaml:"atm_access,omitempty"`
	MobileDeposit   string  `csv:"Mobile_Check_Deposit_Support" json:"mobile_deposit,omitempty" yaml:"mobile_deposit,omitempty"`
	TransferMethods string  `csv:"Transfer_Methods" json:"transfer_methods,omitempty" yaml:"transfer_methods,omitempty"`
	Notes           string  `csv:"Notes" json:"notes,omitempty" yaml:"notes,omitempty"`
}

type productRow struct {
	Row             int     `csv:"Row" json:"row" yaml:"row"`
	Name            string  `csv:"Name" json:"name" yaml:"name"`
	Bank            string  `csv:"Bank" json:"bank" yaml:"bank"`
	Category        string  `csv:"Category" json:"category" yaml:"category"`
	Type            string  `csv:"Type" json:"type,omitempty" yaml:"type,omitempty"`
	InterestRateAPY string  `csv:"Interest_Rate_APY" json:"interest_rate_apy,omitempty" yaml:"interest_rate_apy,omitempty"`
	APY             float64 `csv:"APY" json:"apy" yaml:"apy"`
	AnnualFee       string  `csv:"Annual_Fee" json:"annual_fee,omitempty" yaml:"annual_fee,omitempty"`
	RewardType      string  `csv:"Reward_or_Interest_Type" json:"reward_type,omitempty" yaml:"reward_type,omitempty"`
	ATMAccess       string  `csv:"ATM_Access_Notes" json:"atm_access,omitempty" yaml:"atm_access,omitempty"`
	MobileDeposit   string  `csv:"Mobile_Check_Deposit_Support" json:"mobile_deposit,omitempty" yaml:"mobile_deposit,omitempty"`
	TransferMethods string  `csv:"Transfer_Methods" json:"transfer_methods,omitempty" yaml:"transfer_methods,omitempty"`
	Notes           string  `csv:"Notes" json:"notes,omitempty" yaml:"notes,omitempty"`
}

func toCardRow(p models.Product) cardRow {
	return cardRow{
		Name:       p.Name,
		Bank:       p.Bank,
		Type:       p.TypeText,
		AnnualFee:  models.FormatFee(p.AnnualFee),
		RewardType: text(models.AttributeRewardType)(p),
		Notes:      text(models.AttributeNotes)(p),
	}
}

func toDepositRow(p models.Product) depositRow {
	raw := ""
	if p.InterestRateText != nil {
		raw = *p.InterestRateText
	}
	return depositRow{
		Name:            p.Name,
		Bank:            p.Bank,
		Type:            p.TypeText,
		InterestRateAPY: raw,
		APY:             p.InterestRate,
		AnnualFee:       models.FormatFee(p.AnnualFee),
		RewardType:      text(models.AttributeRewardType)(p),
		ATMAccess:       text(models.AttributeATMAccess)(p),
		MobileDeposit:   text(models.AttributeMobileDeposit)(p),
		TransferMethods: text(models.AttributeTransferMethods)(p),
		Notes:           text(models.AttributeNotes)(p),
	}
}

func toProductRow(p models.Product) productRow {
	d := toDepositRow(p)
	return productRow{
		Row:             p.Row,
		Name:            d.Name,
		Bank:            d.Bank,
		Category:        p.Category.String(),
		Type:            d.Type,
		InterestRateAPY: d.InterestRateAPY,
		APY:             d.APY,
		AnnualFee:       d.AnnualFee,
		RewardType:      d.RewardType,
		ATMAccess:       d.ATMAccess,
		MobileDeposit:   d.MobileDeposit,
		TransferMethods: d.TransferMethods,
		Notes:           d.Notes,
	}
}

func mapRows[T any](ds models.Dataset, fn func(models.Product) T) []T {
	out := make([]T, 0, ds.Len())
	for _, p := range ds.Products() {
		out = append(out, fn(p))
	}
	return out
}
