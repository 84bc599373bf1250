package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	"github.com/procurio/procure_backend/internal/models"
)

type PgxPurchaseRepository struct {
	BaseRepository
	productRepo portsrepo.ProductPostingSupport
	accountRepo portsrepo.AccountPostingSupport
}

// newPgxPurchaseRepository creates a new repository for purchase records.
// Product and account posting support is injected so the posting transaction
// can reuse their row locking and balance/stock updates.
func newPgxPurchaseRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductPostingSupport, accountRepo portsrepo.AccountPostingSupport) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
		accountRepo:    accountRepo,
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade
var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func toModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		ProductID:    d.ProductID,
		SupplierID:   d.SupplierID,
		Quantity:     d.Quantity,
		TotalPrice:   d.TotalPrice,
		ReceiptImage: d.ReceiptImage,
		AccountID:    d.AccountID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		ProductID:    m.ProductID,
		SupplierID:   m.SupplierID,
		Quantity:     m.Quantity,
		TotalPrice:   m.TotalPrice,
		ReceiptImage: m.ReceiptImage,
		AccountID:    m.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const purchaseColumns = `purchase_id, product_id, supplier_id, quantity, total_price, receipt_image, financial_account_id, created_at, last_updated_at`

func scanPurchase(row pgx.Row) (*models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.ProductID,
		&m.SupplierID,
		&m.Quantity,
		&m.TotalPrice,
		&m.ReceiptImage,
		&m.AccountID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// supplierExistsInTx checks the supplier row inside the posting transaction so
// the reference is still valid at commit time.
func (r *PgxPurchaseRepository) supplierExistsInTx(ctx context.Context, tx pgx.Tx, supplierID string) error {
	var one int
	err := tx.QueryRow(ctx, `SELECT 1 FROM suppliers WHERE supplier_id = $1;`, supplierID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("supplier", supplierID)
		}
		return fmt.Errorf("failed to check supplier %s: %w", supplierID, err)
	}
	return nil
}

// PostPurchase applies one purchase posting atomically: it locks the product
// and account rows, verifies the supplier, checks the balance covers the
// total price, debits the account, credits the stock and inserts the record.
// Rows are always locked product first, then account, so concurrent postings
// cannot deadlock.
func (r *PgxPurchaseRepository) PostPurchase(ctx context.Context, purchase domain.Purchase) error {
	modelPur := toModelPurchase(purchase)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	if err := r.supplierExistsInTx(ctx, tx, modelPur.SupplierID); err != nil {
		return err
	}

	product, err := r.productRepo.FindProductForUpdate(ctx, tx, modelPur.ProductID)
	if err != nil {
		return err
	}

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, modelPur.AccountID)
	if err != nil {
		return err
	}

	if account.Balance.LessThan(modelPur.TotalPrice) {
		return fmt.Errorf("%w: account %s balance %s is less than purchase total %s",
			apperrors.ErrInsufficientFunds, account.AccountID, account.Balance.String(), modelPur.TotalPrice.String())
	}

	now := modelPur.CreatedAt // Consistent timestamp across every row touched

	newBalance := account.Balance.Sub(modelPur.TotalPrice)
	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, now); err != nil {
		return err
	}

	newStock := product.Stock + modelPur.Quantity
	if err := r.productRepo.UpdateProductStockInTx(ctx, tx, product.ProductID, newStock, now); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO purchases (purchase_id, product_id, supplier_id, quantity, total_price, receipt_image, financial_account_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelPur.PurchaseID,
		modelPur.ProductID,
		modelPur.SupplierID,
		modelPur.Quantity,
		modelPur.TotalPrice,
		modelPur.ReceiptImage,
		modelPur.AccountID,
		modelPur.CreatedAt,
		modelPur.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase %s: %w", modelPur.PurchaseID, err)
	}

	return r.Commit(ctx, tx)
}

// ReversePurchase undoes a posting atomically: it credits the account back by
// the purchase total, removes the purchased quantity from stock and deletes
// the record. The reversal is rejected when the stock has already been
// consumed below the purchased quantity.
func (r *PgxPurchaseRepository) ReversePurchase(ctx context.Context, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1 FOR UPDATE;`
	modelPur, err := scanPurchase(tx.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("purchase", purchaseID)
		}
		return fmt.Errorf("failed to load purchase %s for reversal: %w", purchaseID, err)
	}

	// Same lock order as PostPurchase: product first, then account.
	product, err := r.productRepo.FindProductForUpdate(ctx, tx, modelPur.ProductID)
	if err != nil {
		return err
	}

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, modelPur.AccountID)
	if err != nil {
		return err
	}

	if product.Stock < modelPur.Quantity {
		return fmt.Errorf("%w: product %s stock %d is below purchased quantity %d, stock already consumed",
			apperrors.ErrConflict, product.ProductID, product.Stock, modelPur.Quantity)
	}

	now := time.Now()

	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, account.Balance.Add(modelPur.TotalPrice), now); err != nil {
		return err
	}

	if err := r.productRepo.UpdateProductStockInTx(ctx, tx, product.ProductID, product.Stock-modelPur.Quantity, now); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase", purchaseID)
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseByID retrieves a purchase by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	modelPur, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase", purchaseID)
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}

	domainPur := toDomainPurchase(*modelPur)
	return &domainPur, nil
}

func (r *PgxPurchaseRepository) listPurchases(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		modelPur, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, toDomainPurchase(*modelPur))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}

	return purchases, nil
}

// ListPurchases retrieves a paginated list of all purchases, oldest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		ORDER BY created_at, purchase_id
		LIMIT $1 OFFSET $2;
	`
	return r.listPurchases(ctx, query, limit, offset)
}

// ListPurchasesByProduct retrieves purchases for one product, oldest first.
func (r *PgxPurchaseRepository) ListPurchasesByProduct(ctx context.Context, productID string, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE product_id = $1
		ORDER BY created_at, purchase_id
		LIMIT $2 OFFSET $3;
	`
	return r.listPurchases(ctx, query, productID, limit, offset)
}

// ListPurchasesBySupplier retrieves purchases for one supplier, oldest first.
func (r *PgxPurchaseRepository) ListPurchasesBySupplier(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE supplier_id = $1
		ORDER BY created_at, purchase_id
		LIMIT $2 OFFSET $3;
	`
	return r.listPurchases(ctx, query, supplierID, limit, offset)
}

// ListPurchasesByAccount retrieves purchases paid from one account, oldest first.
func (r *PgxPurchaseRepository) ListPurchasesByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE financial_account_id = $1
		ORDER BY created_at, purchase_id
		LIMIT $2 OFFSET $3;
	`
	return r.listPurchases(ctx, query, accountID, limit, offset)
}
