package memory

import (
	"context"
	"fmt"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// AccountRepository is the in-memory financial account backend.
type AccountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.FinancialAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, acc := range s.accounts {
		if acc.AccountNumber == account.AccountNumber {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("financial account", accountID)
	}
	return &account, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.FinancialAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]domain.FinancialAccount, 0, len(s.accounts))
	for _, acc := range s.accounts {
		accounts = append(accounts, acc)
	}
	sortByCreation(accounts,
		func(acc domain.FinancialAccount) int64 { return acc.CreatedAt.UnixNano() },
		func(acc domain.FinancialAccount) string { return acc.AccountID })
	return paginate(accounts, limit, offset), nil
}

// UpdateAccount updates name and type. Balance and account number are
// preserved from the stored row.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.FinancialAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.AccountID]
	if !ok {
		return apperrors.NewNotFoundError("financial account", account.AccountID)
	}
	account.Balance = existing.Balance
	account.AccountNumber = existing.AccountNumber
	s.accounts[account.AccountID] = account
	return nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; !ok {
		return apperrors.NewNotFoundError("financial account", accountID)
	}
	for _, p := range s.purchases {
		if p.AccountID == accountID {
			return fmt.Errorf("%w: account %s is still referenced by purchases", apperrors.ErrConflict, accountID)
		}
	}
	delete(s.accounts, accountID)
	return nil
}
