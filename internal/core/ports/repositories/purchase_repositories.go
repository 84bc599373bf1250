package repositories

import (
	"context"

	"github.com/procurio/procure_backend/internal/core/domain"
)

// PurchaseReader defines read operations for purchase records. All listings
// return records in insertion order (oldest first).
type PurchaseReader interface {
	// FindPurchaseByID retrieves a specific purchase by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves a paginated list of all purchases.
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)

	// ListPurchasesByProduct retrieves purchases for one product.
	ListPurchasesByProduct(ctx context.Context, productID string, limit int, offset int) ([]domain.Purchase, error)

	// ListPurchasesBySupplier retrieves purchases for one supplier.
	ListPurchasesBySupplier(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error)

	// ListPurchasesByAccount retrieves purchases paid from one financial account.
	ListPurchasesByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Purchase, error)
}

// PurchasePoster defines the atomic posting operations. Implementations must
// guarantee that either every effect of a call is durably applied or none is,
// and that postings touching the same account or product serialize.
type PurchasePoster interface {
	// PostPurchase verifies the referenced product, supplier and account exist,
	// checks the account balance covers purchase.TotalPrice, debits the account,
	// credits the product's stock and persists the purchase record.
	// Returns apperrors.NotFoundError for a missing reference and
	// apperrors.ErrInsufficientFunds when the balance is too low; in both
	// cases no state changes.
	PostPurchase(ctx context.Context, purchase domain.Purchase) error

	// ReversePurchase undoes a purchase posting: credits the account back by
	// TotalPrice, removes Quantity from the product's stock and deletes the
	// record. Returns apperrors.ErrConflict when the reversal would drive the
	// product's stock negative; no state changes in that case.
	ReversePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchasePoster
}
