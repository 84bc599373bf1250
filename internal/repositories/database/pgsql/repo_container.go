package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	categoryRepo := newPgxCategoryRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool, productRepo, accountRepo)

	return portsrepo.RepositoryProvider{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		SupplierRepo: supplierRepo,
		AccountRepo:  accountRepo,
		PurchaseRepo: purchaseRepo,
	}
}
