package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	"github.com/procurio/procure_backend/internal/models"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for financial account data.
// The concrete type is returned because the purchase repository also needs
// the posting support methods.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements the account repository interfaces
var (
	_ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)
	_ portsrepo.AccountPostingSupport   = (*PgxAccountRepository)(nil)
)

func toModelAccount(d domain.FinancialAccount) models.FinancialAccount {
	return models.FinancialAccount{
		AccountID:     d.AccountID,
		AccountName:   d.AccountName,
		AccountType:   models.AccountType(d.AccountType),
		Balance:       d.Balance,
		AccountNumber: d.AccountNumber,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainAccount(m models.FinancialAccount) domain.FinancialAccount {
	return domain.FinancialAccount{
		AccountID:     m.AccountID,
		AccountName:   m.AccountName,
		AccountType:   domain.AccountType(m.AccountType),
		Balance:       m.Balance,
		AccountNumber: m.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const accountColumns = `account_id, account_name, account_type, balance, account_number, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.FinancialAccount, error) {
	var m models.FinancialAccount
	err := row.Scan(
		&m.AccountID,
		&m.AccountName,
		&m.AccountType,
		&m.Balance,
		&m.AccountNumber,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new financial account with its opening balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.FinancialAccount) error {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO financial_accounts (account_id, account_name, account_type, balance, account_number, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.AccountName,
		modelAcc.AccountType,
		modelAcc.Balance,
		modelAcc.AccountNumber,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation on id or number
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, modelAcc.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a financial account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM financial_accounts WHERE account_id = $1;`

	modelAcc, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("financial account", accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := toDomainAccount(*modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves a paginated list of financial accounts.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.FinancialAccount, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + accountColumns + `
		FROM financial_accounts
		ORDER BY created_at, account_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.FinancialAccount{}
	for rows.Next() {
		modelAcc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(*modelAcc))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}

	return accounts, nil
}

// UpdateAccount updates an account's name and type. Balance and account
// number are deliberately excluded.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.FinancialAccount) error {
	modelAcc := toModelAccount(account)

	query := `
		UPDATE financial_accounts
		SET account_name = $2, account_type = $3, last_updated_at = $4
		WHERE account_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.AccountName,
		modelAcc.AccountType,
		modelAcc.LastUpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", modelAcc.AccountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial account", modelAcc.AccountID)
	}
	return nil
}

// DeleteAccount removes a financial account. Deletes are rejected while
// purchase records still reference it.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM financial_accounts WHERE account_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Restricted by referencing rows
			return fmt.Errorf("%w: account %s is still referenced by purchases", apperrors.ErrConflict, accountID)
		}
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial account", accountID)
	}
	return nil
}

// FindAccountForUpdate selects an account and locks its row within the given transaction.
func (r *PgxAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.FinancialAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM financial_accounts WHERE account_id = $1 FOR UPDATE;`

	modelAcc, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("financial account", accountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	domainAcc := toDomainAccount(*modelAcc)
	return &domainAcc, nil
}

// UpdateAccountBalanceInTx sets an account's balance within the given transaction.
func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE financial_accounts
		SET balance = $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, newBalance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial account", accountID)
	}
	return nil
}
