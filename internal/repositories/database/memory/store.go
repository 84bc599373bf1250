// Package memory provides an in-memory implementation of the repository
// ports. It backs unit tests and local development without Postgres. A single
// mutex guards all state, so purchase postings serialize and observe the same
// all-or-nothing semantics as the SQL transactions.
package memory

import (
	"sort"
	"sync"

	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// Store holds all in-memory state shared by the repositories.
type Store struct {
	mu sync.Mutex

	categories map[string]domain.Category
	products   map[string]domain.Product
	suppliers  map[string]domain.Supplier
	accounts   map[string]domain.FinancialAccount
	purchases  map[string]domain.Purchase

	// purchaseOrder preserves insertion order for listings.
	purchaseOrder []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
		suppliers:  make(map[string]domain.Supplier),
		accounts:   make(map[string]domain.FinancialAccount),
		purchases:  make(map[string]domain.Purchase),
	}
}

// NewRepositoryProvider wires the in-memory repositories over one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo: &CategoryRepository{store: store},
		ProductRepo:  &ProductRepository{store: store},
		SupplierRepo: &SupplierRepository{store: store},
		AccountRepo:  &AccountRepository{store: store},
		PurchaseRepo: &PurchaseRepository{store: store},
	}
}

// paginate applies limit/offset with the same defaults the SQL repositories use.
func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// sortByCreation orders entities the way the SQL listings do.
func sortByCreation[T any](items []T, createdAtOf func(T) int64, idOf func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		if createdAtOf(items[i]) != createdAtOf(items[j]) {
			return createdAtOf(items[i]) < createdAtOf(items[j])
		}
		return idOf(items[i]) < idOf(items[j])
	})
}
