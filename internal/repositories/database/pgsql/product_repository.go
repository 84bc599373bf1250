package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	"github.com/procurio/procure_backend/internal/models"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for product data.
// The concrete type is returned because the purchase repository also needs
// the posting support methods.
func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements the product repository interfaces
var (
	_ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)
	_ portsrepo.ProductPostingSupport   = (*PgxProductRepository)(nil)
)

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		CategoryID:  d.CategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		CategoryID:  m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const productColumns = `product_id, name, description, price, stock, category_id, created_at, last_updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Stock,
		&m.CategoryID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProd := toModelProduct(product)

	query := `
		INSERT INTO products (product_id, name, description, price, stock, category_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		modelProd.ProductID,
		modelProd.Name,
		modelProd.Description,
		modelProd.Price,
		modelProd.Stock,
		modelProd.CategoryID,
		modelProd.CreatedAt,
		modelProd.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, modelProd.ProductID)
			}
			if pgErr.Code == "23503" { // Foreign key violation on category
				return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, modelProd.CategoryID)
			}
		}
		return fmt.Errorf("failed to save product %s: %w", modelProd.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	modelProd, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	domainProd := toDomainProduct(*modelProd)
	return &domainProd, nil
}

func (r *PgxProductRepository) listProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		modelProd, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(*modelProd))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return products, nil
}

// ListProducts retrieves a paginated list of products.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at, product_id
		LIMIT $1 OFFSET $2;
	`
	return r.listProducts(ctx, query, limit, offset)
}

// ListProductsByCategory retrieves a paginated list of products in a category.
func (r *PgxProductRepository) ListProductsByCategory(ctx context.Context, categoryID string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1
		ORDER BY created_at, product_id
		LIMIT $2 OFFSET $3;
	`
	return r.listProducts(ctx, query, categoryID, limit, offset)
}

// UpdateProduct updates a product's catalog details. Stock is deliberately
// excluded; it only moves inside posting transactions.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProd := toModelProduct(product)

	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, last_updated_at = $6
		WHERE product_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelProd.ProductID,
		modelProd.Name,
		modelProd.Description,
		modelProd.Price,
		modelProd.CategoryID,
		modelProd.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, modelProd.CategoryID)
		}
		return fmt.Errorf("failed to execute update product %s: %w", modelProd.ProductID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product", modelProd.ProductID)
	}
	return nil
}

// DeleteProduct removes a product. Deletes are rejected while purchase
// records still reference it.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Restricted by referencing rows
			return fmt.Errorf("%w: product %s is still referenced by purchases", apperrors.ErrConflict, productID)
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product", productID)
	}
	return nil
}

// FindProductForUpdate selects a product and locks its row within the given transaction.
func (r *PgxProductRepository) FindProductForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 FOR UPDATE;`

	modelProd, err := scanProduct(tx.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product", productID)
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", productID, err)
	}

	domainProd := toDomainProduct(*modelProd)
	return &domainProd, nil
}

// UpdateProductStockInTx sets a product's stock within the given transaction.
func (r *PgxProductRepository) UpdateProductStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock int64, now time.Time) error {
	query := `
		UPDATE products
		SET stock = $2, last_updated_at = $3
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, newStock, now)
	if err != nil {
		return fmt.Errorf("failed to update stock for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product", productID)
	}
	return nil
}
