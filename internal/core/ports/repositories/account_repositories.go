package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/procurio/procure_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for financial account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific financial account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)

	// ListAccounts retrieves a paginated list of financial accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.FinancialAccount, error)
}

// AccountWriter defines write operations for financial account data.
// Balance is deliberately absent here: it is only mutated through postings.
type AccountWriter interface {
	// SaveAccount persists a new financial account.
	SaveAccount(ctx context.Context, account domain.FinancialAccount) error

	// UpdateAccount updates an existing account's name.
	UpdateAccount(ctx context.Context, account domain.FinancialAccount) error

	// DeleteAccount removes a financial account. Implementations must reject
	// the delete while purchases still reference the account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountPostingSupport defines operations the purchase posting transaction
// needs. Only the SQL-backed repositories implement it.
type AccountPostingSupport interface {
	// FindAccountForUpdate selects an account and locks its row within a transaction.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.FinancialAccount, error)

	// UpdateAccountBalanceInTx sets an account's balance within a given transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines the account repository interfaces services use.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
