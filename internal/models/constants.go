package models

// Source column names, matched exactly after trimming surrounding whitespace.
const (
	ColumnName            = "Name"
	ColumnBank            = "Bank"
	ColumnType            = "Type"
	ColumnInterestRate    = "Interest_Rate_APY"
	ColumnAnnualFee       = "Annual_Fee"
	ColumnRewardType      = "Reward_or_Interest_Type"
	ColumnATMAccess       = "ATM_Access_Notes"
	ColumnMobileDeposit   = "Mobile_Check_Deposit_Support"
	ColumnTransferMethods = "Transfer_Methods"
	ColumnNotes           = "Notes"
)

// RequiredColumns must be present in every source file.
var RequiredColumns = []string{ColumnName, ColumnBank}

// DefaultMaxCompare is the largest comparison selection.
const DefaultMaxCompare = 3

// DefaultHighYieldThreshold is the APY, in percentage points, a savings
// product must exceed to count as high-yield.
const DefaultHighYieldThreshold = 1.0

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)
