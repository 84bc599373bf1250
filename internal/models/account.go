package models

import "github.com/shopspring/decimal"

// AccountType defines the fundamental accounting type of a financial account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// FinancialAccount represents a row in the financial_accounts table.
type FinancialAccount struct {
	AccountID     string          `db:"account_id"`
	AccountName   string          `db:"account_name"`
	AccountType   AccountType     `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	AccountNumber string          `db:"account_number"` // UNIQUE
	AuditFields
}
