package domain

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

// FinancialAccount represents a money account that purchases are paid from.
// Balance is only ever mutated through purchase postings and their reversals,
// and must never go negative.
type FinancialAccount struct {
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	AccountNumber string          `json:"accountNumber"` // unique across accounts
	AuditFields
}
