package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/procurio/procure_backend/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)

	// ListProductsByCategory retrieves a paginated list of products in a category.
	ListProductsByCategory(ctx context.Context, categoryID string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
// Stock is deliberately absent here: it is only mutated through postings.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's catalog details (not stock).
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductPostingSupport defines operations the purchase posting transaction
// needs. Only the SQL-backed repositories implement it.
type ProductPostingSupport interface {
	// FindProductForUpdate selects a product and locks its row within a transaction.
	FindProductForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error)

	// UpdateProductStockInTx sets a product's stock within a given transaction.
	UpdateProductStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock int64, now time.Time) error
}

// ProductRepositoryFacade combines the product repository interfaces services use.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
