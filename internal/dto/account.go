package dto

import (
	"time"

	"github.com/procurio/procure_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new financial account.
// Balance is the opening balance and may not be negative; after creation the
// balance only moves through purchase postings.
type CreateAccountRequest struct {
	AccountName   string             `json:"accountName" binding:"required"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Balance       decimal.Decimal    `json:"balance"`
	AccountNumber string             `json:"accountNumber" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating a financial account.
// Balance and account number are deliberately absent: the balance only moves
// through postings, and the number is fixed at creation.
type UpdateAccountRequest struct {
	AccountName *string             `json:"accountName"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the data returned for a financial account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	AccountName   string             `json:"accountName"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance"`
	AccountNumber string             `json:"accountNumber"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.FinancialAccount to AccountResponse DTO
func ToAccountResponse(acc *domain.FinancialAccount) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountName:   acc.AccountName,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		AccountNumber: acc.AccountNumber,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.FinancialAccount to response DTOs
func ToListAccountResponse(accounts []domain.FinancialAccount) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing financial accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListAccountsResponse wraps the list of financial accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
