package memory

import (
	"context"
	"fmt"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// PurchaseRepository is the in-memory purchase backend. The store mutex
// serializes postings, so every check-then-mutate sequence below is atomic
// with respect to concurrent postings on the same account or product.
type PurchaseRepository struct {
	store *Store
}

var _ portsrepo.PurchaseRepositoryFacade = (*PurchaseRepository)(nil)

// PostPurchase applies one purchase posting. All validations run before any
// mutation, so a rejected posting leaves no trace.
func (r *PurchaseRepository) PostPurchase(ctx context.Context, purchase domain.Purchase) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.purchases[purchase.PurchaseID]; exists {
		return fmt.Errorf("%w: purchase with ID %s already exists", apperrors.ErrDuplicate, purchase.PurchaseID)
	}
	if _, ok := s.suppliers[purchase.SupplierID]; !ok {
		return apperrors.NewNotFoundError("supplier", purchase.SupplierID)
	}
	product, ok := s.products[purchase.ProductID]
	if !ok {
		return apperrors.NewNotFoundError("product", purchase.ProductID)
	}
	account, ok := s.accounts[purchase.AccountID]
	if !ok {
		return apperrors.NewNotFoundError("financial account", purchase.AccountID)
	}

	if account.Balance.LessThan(purchase.TotalPrice) {
		return fmt.Errorf("%w: account %s balance %s is less than purchase total %s",
			apperrors.ErrInsufficientFunds, account.AccountID, account.Balance.String(), purchase.TotalPrice.String())
	}

	now := purchase.CreatedAt

	account.Balance = account.Balance.Sub(purchase.TotalPrice)
	account.LastUpdatedAt = now
	s.accounts[account.AccountID] = account

	product.Stock += purchase.Quantity
	product.LastUpdatedAt = now
	s.products[product.ProductID] = product

	s.purchases[purchase.PurchaseID] = purchase
	s.purchaseOrder = append(s.purchaseOrder, purchase.PurchaseID)
	return nil
}

// ReversePurchase undoes a posting: balance is credited back, the purchased
// quantity leaves stock and the record is removed. Rejected when the stock
// has already been consumed below the purchased quantity.
func (r *PurchaseRepository) ReversePurchase(ctx context.Context, purchaseID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase, ok := s.purchases[purchaseID]
	if !ok {
		return apperrors.NewNotFoundError("purchase", purchaseID)
	}
	product, ok := s.products[purchase.ProductID]
	if !ok {
		return apperrors.NewNotFoundError("product", purchase.ProductID)
	}
	account, ok := s.accounts[purchase.AccountID]
	if !ok {
		return apperrors.NewNotFoundError("financial account", purchase.AccountID)
	}

	if product.Stock < purchase.Quantity {
		return fmt.Errorf("%w: product %s stock %d is below purchased quantity %d, stock already consumed",
			apperrors.ErrConflict, product.ProductID, product.Stock, purchase.Quantity)
	}

	account.Balance = account.Balance.Add(purchase.TotalPrice)
	s.accounts[account.AccountID] = account

	product.Stock -= purchase.Quantity
	s.products[product.ProductID] = product

	delete(s.purchases, purchaseID)
	for i, id := range s.purchaseOrder {
		if id == purchaseID {
			s.purchaseOrder = append(s.purchaseOrder[:i], s.purchaseOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *PurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase, ok := s.purchases[purchaseID]
	if !ok {
		return nil, apperrors.NewNotFoundError("purchase", purchaseID)
	}
	return &purchase, nil
}

func (r *PurchaseRepository) listLocked(filter func(domain.Purchase) bool, limit, offset int) []domain.Purchase {
	purchases := []domain.Purchase{}
	for _, id := range r.store.purchaseOrder {
		p := r.store.purchases[id]
		if filter == nil || filter(p) {
			purchases = append(purchases, p)
		}
	}
	return paginate(purchases, limit, offset)
}

func (r *PurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(nil, limit, offset), nil
}

func (r *PurchaseRepository) ListPurchasesByProduct(ctx context.Context, productID string, limit int, offset int) ([]domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(func(p domain.Purchase) bool { return p.ProductID == productID }, limit, offset), nil
}

func (r *PurchaseRepository) ListPurchasesBySupplier(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(func(p domain.Purchase) bool { return p.SupplierID == supplierID }, limit, offset), nil
}

func (r *PurchaseRepository) ListPurchasesByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Purchase, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.listLocked(func(p domain.Purchase) bool { return p.AccountID == accountID }, limit, offset), nil
}
