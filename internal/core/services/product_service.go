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

// productServiceImpl implements the ProductSvcFacade interface
type productServiceImpl struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.ProductSvcFacade {
	return &productServiceImpl{
		productRepo:  repo,
		categoryRepo: categoryRepo,
	}
}

// Ensure productServiceImpl implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productServiceImpl)(nil)

func (s *productServiceImpl) validateCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("categoryID", "category does not exist")
		}
		s.LogError(ctx, err, "Failed to find category",
			slog.String("category_id", categoryID))
		return err
	}
	return nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewFieldError("price", "price must not be negative")
	}
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       0, // stock only moves through purchase postings
		CategoryID:  req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product",
			slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created successfully",
		slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productServiceImpl) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID",
				slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	var (
		products []domain.Product
		err      error
	)
	if params.CategoryID != "" {
		products, err = s.productRepo.ListProductsByCategory(ctx, params.CategoryID, params.Limit, params.Offset)
	} else {
		products, err = s.productRepo.ListProducts(ctx, params.Limit, params.Offset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list products",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		product.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		product.Description = *req.Description
		updated = true
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewFieldError("price", "price must not be negative")
		}
		product.Price = *req.Price
		updated = true
	}
	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for product update",
			slog.String("product_id", productID))
		return product, nil
	}

	product.LastUpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product",
			slog.String("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Product updated successfully",
		slog.String("product_id", productID))
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := s.GetProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete product",
				slog.String("product_id", productID))
		}
		return err
	}

	s.LogInfo(ctx, "Product deleted successfully",
		slog.String("product_id", productID))
	return nil
}
