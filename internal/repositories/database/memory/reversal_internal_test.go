package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
)

// Depleting stock below a purchase's quantity has no public API, so this test
// mutates the store directly to stage the conflict.
func TestReversePurchase_StockConsumedConflict(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := NewRepositoryProvider(store)
	now := time.Now()

	supplier := domain.Supplier{SupplierID: uuid.NewString(), Name: "Acme"}
	category := domain.Category{CategoryID: uuid.NewString(), Name: "Hardware"}
	product := domain.Product{ProductID: uuid.NewString(), Name: "M8 Bolt", CategoryID: category.CategoryID}
	account := domain.FinancialAccount{
		AccountID:     uuid.NewString(),
		AccountName:   "Operating Cash",
		AccountType:   domain.Asset,
		Balance:       decimal.NewFromInt(100),
		AccountNumber: uuid.NewString(),
	}
	store.suppliers[supplier.SupplierID] = supplier
	store.categories[category.CategoryID] = category
	store.products[product.ProductID] = product
	store.accounts[account.AccountID] = account

	purchase := domain.Purchase{
		PurchaseID:  uuid.NewString(),
		ProductID:   product.ProductID,
		SupplierID:  supplier.SupplierID,
		Quantity:    5,
		TotalPrice:  decimal.NewFromInt(60),
		AccountID:   account.AccountID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repos.PurchaseRepo.PostPurchase(ctx, purchase))

	// Most of the purchased stock has since been consumed.
	depleted := store.products[product.ProductID]
	depleted.Stock = 2
	store.products[product.ProductID] = depleted

	err := repos.PurchaseRepo.ReversePurchase(ctx, purchase.PurchaseID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// A rejected reversal leaves balance, stock and the record untouched
	gotAccount := store.accounts[account.AccountID]
	assert.True(t, gotAccount.Balance.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, int64(2), store.products[product.ProductID].Stock)
	_, exists := store.purchases[purchase.PurchaseID]
	assert.True(t, exists)
}
