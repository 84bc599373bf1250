package services

import (
	"context"

	"github.com/procurio/procure_backend/internal/core/domain"
	"github.com/procurio/procure_backend/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase records
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a specific purchase by its unique identifier.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves a paginated list of purchases, optionally
	// filtered by product, supplier or financial account.
	ListPurchases(ctx context.Context, params dto.ListPurchasesParams) ([]domain.Purchase, error)
}

// PurchaseWriterSvc defines the posting operations for purchases
type PurchaseWriterSvc interface {
	// CreatePurchase validates the request and atomically posts it: debits
	// the financial account by TotalPrice and credits the product's stock by
	// Quantity along with persisting the record.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// DeletePurchase atomically reverses a posting: credits the account back,
	// removes the stock and deletes the record.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
