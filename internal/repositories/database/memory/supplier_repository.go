package memory

import (
	"context"
	"fmt"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// SupplierRepository is the in-memory supplier backend.
type SupplierRepository struct {
	store *Store
}

var _ portsrepo.SupplierRepositoryFacade = (*SupplierRepository)(nil)

func (r *SupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.suppliers[supplier.SupplierID]; exists {
		return fmt.Errorf("%w: supplier with ID %s already exists", apperrors.ErrDuplicate, supplier.SupplierID)
	}
	s.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (r *SupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, ok := s.suppliers[supplierID]
	if !ok {
		return nil, apperrors.NewNotFoundError("supplier", supplierID)
	}
	return &supplier, nil
}

func (r *SupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	suppliers := make([]domain.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		suppliers = append(suppliers, sup)
	}
	sortByCreation(suppliers,
		func(sup domain.Supplier) int64 { return sup.CreatedAt.UnixNano() },
		func(sup domain.Supplier) string { return sup.SupplierID })
	return paginate(suppliers, limit, offset), nil
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliers[supplier.SupplierID]; !ok {
		return apperrors.NewNotFoundError("supplier", supplier.SupplierID)
	}
	s.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suppliers[supplierID]; !ok {
		return apperrors.NewNotFoundError("supplier", supplierID)
	}
	for _, p := range s.purchases {
		if p.SupplierID == supplierID {
			return fmt.Errorf("%w: supplier %s is still referenced by purchases", apperrors.ErrConflict, supplierID)
		}
	}
	delete(s.suppliers, supplierID)
	return nil
}
