package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	"github.com/procurio/procure_backend/internal/models"
)

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{pool: pool}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func toModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:   d.SupplierID,
		Name:         d.Name,
		CompanyName:  d.CompanyName,
		ContactEmail: d.ContactEmail,
		PhoneNumber:  d.PhoneNumber,
		Address:      d.Address,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:   m.SupplierID,
		Name:         m.Name,
		CompanyName:  m.CompanyName,
		ContactEmail: m.ContactEmail,
		PhoneNumber:  m.PhoneNumber,
		Address:      m.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSup := toModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (supplier_id, name, company_name, contact_email, phone_number, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		modelSup.SupplierID,
		modelSup.Name,
		modelSup.CompanyName,
		modelSup.ContactEmail,
		modelSup.PhoneNumber,
		modelSup.Address,
		modelSup.CreatedAt,
		modelSup.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: supplier with ID %s already exists", apperrors.ErrDuplicate, modelSup.SupplierID)
		}
		return fmt.Errorf("failed to save supplier %s: %w", modelSup.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, company_name, contact_email, phone_number, address, created_at, last_updated_at
		FROM suppliers
		WHERE supplier_id = $1;
	`
	var modelSup models.Supplier

	err := r.pool.QueryRow(ctx, query, supplierID).Scan(
		&modelSup.SupplierID,
		&modelSup.Name,
		&modelSup.CompanyName,
		&modelSup.ContactEmail,
		&modelSup.PhoneNumber,
		&modelSup.Address,
		&modelSup.CreatedAt,
		&modelSup.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("supplier", supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	domainSup := toDomainSupplier(modelSup)
	return &domainSup, nil
}

// ListSuppliers retrieves a paginated list of suppliers.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT supplier_id, name, company_name, contact_email, phone_number, address, created_at, last_updated_at
		FROM suppliers
		ORDER BY created_at, supplier_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var modelSup models.Supplier
		err := rows.Scan(
			&modelSup.SupplierID,
			&modelSup.Name,
			&modelSup.CompanyName,
			&modelSup.ContactEmail,
			&modelSup.PhoneNumber,
			&modelSup.Address,
			&modelSup.CreatedAt,
			&modelSup.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, toDomainSupplier(modelSup))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}

	return suppliers, nil
}

// UpdateSupplier updates an existing supplier in the database.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSup := toModelSupplier(supplier)

	query := `
		UPDATE suppliers
		SET name = $2, company_name = $3, contact_email = $4, phone_number = $5, address = $6, last_updated_at = $7
		WHERE supplier_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelSup.SupplierID,
		modelSup.Name,
		modelSup.CompanyName,
		modelSup.ContactEmail,
		modelSup.PhoneNumber,
		modelSup.Address,
		modelSup.LastUpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to execute update supplier %s: %w", modelSup.SupplierID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("supplier", modelSup.SupplierID)
	}
	return nil
}

// DeleteSupplier removes a supplier. Deletes are rejected while purchase
// records still reference it.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	query := `DELETE FROM suppliers WHERE supplier_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, supplierID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Restricted by referencing rows
			return fmt.Errorf("%w: supplier %s is still referenced by purchases", apperrors.ErrConflict, supplierID)
		}
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("supplier", supplierID)
	}
	return nil
}
