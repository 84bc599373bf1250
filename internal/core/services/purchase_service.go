package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	portssvc "github.com/procurio/procure_backend/internal/core/ports/services"
	"github.com/procurio/procure_backend/internal/dto"
)

// purchaseServiceImpl implements the PurchaseSvcFacade interface.
// Posting atomicity lives in the repository; this layer owns request
// validation and must not touch the repository until the request is valid.
type purchaseServiceImpl struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseServiceImpl{purchaseRepo: repo}
}

// Ensure purchaseServiceImpl implements the PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseServiceImpl)(nil)

// validateCreatePurchase checks the request shape before any repository call.
func validateCreatePurchase(req dto.CreatePurchaseRequest) error {
	if req.ProductID == "" {
		return apperrors.NewFieldError("productID", "product ID is required")
	}
	if req.SupplierID == "" {
		return apperrors.NewFieldError("supplierID", "supplier ID is required")
	}
	if req.FinancialAccountID == "" {
		return apperrors.NewFieldError("financialAccountID", "financial account ID is required")
	}
	if req.Quantity <= 0 {
		return apperrors.NewFieldError("quantity", "quantity must be a positive integer")
	}
	if !req.TotalPrice.IsPositive() {
		return apperrors.NewFieldError("totalPrice", "total price must be greater than zero")
	}
	if req.ReceiptImage == "" {
		return apperrors.NewFieldError("receiptImage", "receipt reference is required")
	}
	return nil
}

func (s *purchaseServiceImpl) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	if err := validateCreatePurchase(req); err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:   uuid.NewString(),
		ProductID:    req.ProductID,
		SupplierID:   req.SupplierID,
		Quantity:     req.Quantity,
		TotalPrice:   req.TotalPrice,
		ReceiptImage: req.ReceiptImage,
		AccountID:    req.FinancialAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.purchaseRepo.PostPurchase(ctx, purchase); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogDebug(ctx, "Purchase posting rejected, referenced entity missing",
				slog.String("purchase_id", purchase.PurchaseID),
				slog.String("error", err.Error()))
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			s.LogInfo(ctx, "Purchase posting rejected, insufficient funds",
				slog.String("purchase_id", purchase.PurchaseID),
				slog.String("account_id", purchase.AccountID),
				slog.String("total_price", purchase.TotalPrice.String()))
		default:
			s.LogError(ctx, err, "Failed to post purchase",
				slog.String("purchase_id", purchase.PurchaseID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Purchase posted successfully",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("product_id", purchase.ProductID),
		slog.String("account_id", purchase.AccountID),
		slog.Int64("quantity", purchase.Quantity),
		slog.String("total_price", purchase.TotalPrice.String()))
	return &purchase, nil
}

func (s *purchaseServiceImpl) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID",
				slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseServiceImpl) ListPurchases(ctx context.Context, params dto.ListPurchasesParams) ([]domain.Purchase, error) {
	filters := 0
	for _, f := range []string{params.ProductID, params.SupplierID, params.AccountID} {
		if f != "" {
			filters++
		}
	}
	if filters > 1 {
		return nil, apperrors.NewFieldError("filter", "at most one of productID, supplierID and financialAccountID may be set")
	}

	var (
		purchases []domain.Purchase
		err       error
	)
	switch {
	case params.ProductID != "":
		purchases, err = s.purchaseRepo.ListPurchasesByProduct(ctx, params.ProductID, params.Limit, params.Offset)
	case params.SupplierID != "":
		purchases, err = s.purchaseRepo.ListPurchasesBySupplier(ctx, params.SupplierID, params.Limit, params.Offset)
	case params.AccountID != "":
		purchases, err = s.purchaseRepo.ListPurchasesByAccount(ctx, params.AccountID, params.Limit, params.Offset)
	default:
		purchases, err = s.purchaseRepo.ListPurchases(ctx, params.Limit, params.Offset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}

func (s *purchaseServiceImpl) DeletePurchase(ctx context.Context, purchaseID string) error {
	if err := s.purchaseRepo.ReversePurchase(ctx, purchaseID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			// nothing to log, caller maps this to a 404
		case errors.Is(err, apperrors.ErrConflict):
			s.LogInfo(ctx, "Purchase reversal rejected, stock already consumed",
				slog.String("purchase_id", purchaseID))
		default:
			s.LogError(ctx, err, "Failed to reverse purchase",
				slog.String("purchase_id", purchaseID))
		}
		return err
	}

	s.LogInfo(ctx, "Purchase reversed successfully",
		slog.String("purchase_id", purchaseID))
	return nil
}
