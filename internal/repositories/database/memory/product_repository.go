package memory

import (
	"context"
	"fmt"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// ProductRepository is the in-memory product backend.
type ProductRepository struct {
	store *Store
}

var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ProductID]; exists {
		return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, product.ProductID)
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, product.CategoryID)
	}
	s.products[product.ProductID] = product
	return nil
}

func (r *ProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, apperrors.NewNotFoundError("product", productID)
	}
	return &product, nil
}

func (r *ProductRepository) listLocked(filter func(domain.Product) bool, limit, offset int) []domain.Product {
	products := []domain.Product{}
	for _, p := range r.store.products {
		if filter == nil || filter(p) {
			products = append(products, p)
		}
	}
	sortByCreation(products,
		func(p domain.Product) int64 { return p.CreatedAt.UnixNano() },
		func(p domain.Product) string { return p.ProductID })
	return paginate(products, limit, offset)
}

func (r *ProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(nil, limit, offset), nil
}

func (r *ProductRepository) ListProductsByCategory(ctx context.Context, categoryID string, limit int, offset int) ([]domain.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(func(p domain.Product) bool { return p.CategoryID == categoryID }, limit, offset), nil
}

// UpdateProduct updates catalog details. Stock is preserved from the stored
// row; it only moves through purchase postings.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[product.ProductID]
	if !ok {
		return apperrors.NewNotFoundError("product", product.ProductID)
	}
	if _, ok := s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, product.CategoryID)
	}
	product.Stock = existing.Stock
	s.products[product.ProductID] = product
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return apperrors.NewNotFoundError("product", productID)
	}
	for _, p := range s.purchases {
		if p.ProductID == productID {
			return fmt.Errorf("%w: product %s is still referenced by purchases", apperrors.ErrConflict, productID)
		}
	}
	delete(s.products, productID)
	return nil
}
