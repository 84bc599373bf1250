package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	"github.com/procurio/procure_backend/internal/repositories/database/memory"
)

// seedFixtures creates a category, a product, a supplier and an account with
// the given opening balance, returning the wired repositories and the IDs.
func seedFixtures(t *testing.T, openingBalance int64) (portsrepo.RepositoryProvider, domain.Product, domain.Supplier, domain.FinancialAccount) {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	now := time.Now()

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        "Hardware",
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repos.CategoryRepo.SaveCategory(ctx, category))

	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        "M8 Bolt",
		Price:       decimal.NewFromInt(2),
		Stock:       0,
		CategoryID:  category.CategoryID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, product))

	supplier := domain.Supplier{
		SupplierID:   uuid.NewString(),
		Name:         "Acme Fasteners",
		CompanyName:  "Acme Fasteners GmbH",
		ContactEmail: "sales@acme-fasteners.test",
		PhoneNumber:  "+49 30 1234567",
		Address:      "Industriestr. 1, Berlin",
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repos.SupplierRepo.SaveSupplier(ctx, supplier))

	account := domain.FinancialAccount{
		AccountID:     uuid.NewString(),
		AccountName:   "Operating Cash",
		AccountType:   domain.Asset,
		Balance:       decimal.NewFromInt(openingBalance),
		AccountNumber: uuid.NewString(),
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account))

	return repos, product, supplier, account
}

func newPurchase(product domain.Product, supplier domain.Supplier, account domain.FinancialAccount, quantity int64, totalPrice int64) domain.Purchase {
	now := time.Now()
	return domain.Purchase{
		PurchaseID:  uuid.NewString(),
		ProductID:   product.ProductID,
		SupplierID:  supplier.SupplierID,
		Quantity:    quantity,
		TotalPrice:  decimal.NewFromInt(totalPrice),
		AccountID:   account.AccountID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func TestPostPurchase_DebitsAccountAndCreditsStock(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	err := repos.PurchaseRepo.PostPurchase(ctx, newPurchase(product, supplier, account, 5, 60))
	require.NoError(t, err)

	gotAccount, err := repos.AccountRepo.FindAccountByID(ctx, account.AccountID)
	require.NoError(t, err)
	assert.True(t, gotAccount.Balance.Equal(decimal.NewFromInt(40)), "balance should be 100 - 60, got %s", gotAccount.Balance)

	gotProduct, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotProduct.Stock)
}

func TestPostPurchase_InsufficientFundsLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, newPurchase(product, supplier, account, 5, 60)))

	// Second posting needs 70 but only 40 remains
	err := repos.PurchaseRepo.PostPurchase(ctx, newPurchase(product, supplier, account, 2, 70))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	// The rejected posting must not have moved balance or stock
	gotAccount, err := repos.AccountRepo.FindAccountByID(ctx, account.AccountID)
	require.NoError(t, err)
	assert.True(t, gotAccount.Balance.Equal(decimal.NewFromInt(40)))

	gotProduct, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotProduct.Stock)

	purchases, err := repos.PurchaseRepo.ListPurchases(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestPostPurchase_MissingReferences(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	missing := newPurchase(product, supplier, account, 1, 10)
	missing.ProductID = uuid.NewString()
	err := repos.PurchaseRepo.PostPurchase(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	missing = newPurchase(product, supplier, account, 1, 10)
	missing.SupplierID = uuid.NewString()
	err = repos.PurchaseRepo.PostPurchase(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	missing = newPurchase(product, supplier, account, 1, 10)
	missing.AccountID = uuid.NewString()
	err = repos.PurchaseRepo.PostPurchase(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// No rejected posting may leave a record behind
	purchases, err := repos.PurchaseRepo.ListPurchases(ctx, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestPostPurchase_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	purchase := newPurchase(product, supplier, account, 1, 10)
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, purchase))

	err := repos.PurchaseRepo.PostPurchase(ctx, purchase)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPostPurchase_ConcurrentPostingsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	// 20 postings of 15 each against a balance of 100: at most 6 can land.
	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repos.PurchaseRepo.PostPurchase(ctx, newPurchase(product, supplier, account, 1, 15))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	}
	assert.Equal(t, 6, successes)

	gotAccount, err := repos.AccountRepo.FindAccountByID(ctx, account.AccountID)
	require.NoError(t, err)
	assert.True(t, gotAccount.Balance.Equal(decimal.NewFromInt(10)), "expected balance 10, got %s", gotAccount.Balance)
	assert.False(t, gotAccount.Balance.IsNegative())

	gotProduct, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), gotProduct.Stock)
}

func TestReversePurchase_RestoresBalanceAndStock(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 100)

	purchase := newPurchase(product, supplier, account, 5, 60)
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, purchase))

	require.NoError(t, repos.PurchaseRepo.ReversePurchase(ctx, purchase.PurchaseID))

	gotAccount, err := repos.AccountRepo.FindAccountByID(ctx, account.AccountID)
	require.NoError(t, err)
	assert.True(t, gotAccount.Balance.Equal(decimal.NewFromInt(100)))

	gotProduct, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gotProduct.Stock)

	_, err = repos.PurchaseRepo.FindPurchaseByID(ctx, purchase.PurchaseID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReversePurchase_NotFound(t *testing.T) {
	ctx := context.Background()
	repos, _, _, _ := seedFixtures(t, 100)

	err := repos.PurchaseRepo.ReversePurchase(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPurchases_InsertionOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	repos, product, supplier, account := seedFixtures(t, 1000)

	first := newPurchase(product, supplier, account, 1, 10)
	second := newPurchase(product, supplier, account, 2, 20)
	third := newPurchase(product, supplier, account, 3, 30)
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, first))
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, second))
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, third))

	purchases, err := repos.PurchaseRepo.ListPurchases(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, purchases, 3)
	assert.Equal(t, first.PurchaseID, purchases[0].PurchaseID)
	assert.Equal(t, second.PurchaseID, purchases[1].PurchaseID)
	assert.Equal(t, third.PurchaseID, purchases[2].PurchaseID)

	// Reversal removes the record from the listing but keeps the order of the rest
	require.NoError(t, repos.PurchaseRepo.ReversePurchase(ctx, second.PurchaseID))
	purchases, err = repos.PurchaseRepo.ListPurchases(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, first.PurchaseID, purchases[0].PurchaseID)
	assert.Equal(t, third.PurchaseID, purchases[1].PurchaseID)

	byProduct, err := repos.PurchaseRepo.ListPurchasesByProduct(ctx, product.ProductID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	byOther, err := repos.PurchaseRepo.ListPurchasesBySupplier(ctx, uuid.NewString(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, byOther)

	// Pagination over the ordered listing
	page, err := repos.PurchaseRepo.ListPurchases(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, third.PurchaseID, page[0].PurchaseID)
}
