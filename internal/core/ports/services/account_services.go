package services

import (
	"context"

	"github.com/procurio/procure_backend/internal/core/domain"
	"github.com/procurio/procure_backend/internal/dto"
)

// AccountReaderSvc defines read operations for financial account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific financial account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)

	// ListAccounts retrieves a paginated list of financial accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.FinancialAccount, error)
}

// AccountWriterSvc defines write operations for financial account data
type AccountWriterSvc interface {
	// CreateAccount persists a new financial account with its opening balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.FinancialAccount, error)

	// UpdateAccount updates an existing account's name or type.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.FinancialAccount, error)

	// DeleteAccount removes a financial account that no purchase references.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
