package pgsql

import (
	"context"
	"database/sql"
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

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{pool: pool}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// Helper to convert domain.Category to models.Category for DB storage
func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:       d.CategoryID,
		Name:             d.Name,
		Description:      d.Description,
		ParentCategoryID: d.ParentCategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Category from DB to domain.Category
func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		Name:             m.Name,
		Description:      m.Description,
		ParentCategoryID: m.ParentCategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := toModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, description, parent_category_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	// Use sql.NullString for potentially NULL parent_category_id
	var parentID sql.NullString
	if modelCat.ParentCategoryID != "" {
		parentID = sql.NullString{String: modelCat.ParentCategoryID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.Description,
		parentID,
		modelCat.CreatedAt,
		modelCat.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, modelCat.CategoryID)
			}
			if pgErr.Code == "23503" { // Foreign key violation on parent
				return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrValidation, modelCat.ParentCategoryID)
			}
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, description, parent_category_id, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCat models.Category
	var parentID sql.NullString

	err := r.pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCat.CategoryID,
		&modelCat.Name,
		&modelCat.Description,
		&parentID,
		&modelCat.CreatedAt,
		&modelCat.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category", categoryID)
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	if parentID.Valid {
		modelCat.ParentCategoryID = parentID.String
	}
	domainCat := toDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves a paginated list of categories.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT category_id, name, description, parent_category_id, created_at, last_updated_at
		FROM categories
		ORDER BY created_at, category_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var modelCat models.Category
		var parentID sql.NullString
		err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.Name,
			&modelCat.Description,
			&parentID,
			&modelCat.CreatedAt,
			&modelCat.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		if parentID.Valid {
			modelCat.ParentCategoryID = parentID.String
		}
		categories = append(categories, toDomainCategory(modelCat))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

// UpdateCategory updates an existing category in the database.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := toModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, description = $3, parent_category_id = $4, last_updated_at = $5
		WHERE category_id = $1;
	`
	var parentID sql.NullString
	if modelCat.ParentCategoryID != "" {
		parentID = sql.NullString{String: modelCat.ParentCategoryID, Valid: true}
	}

	cmdTag, err := r.pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.Description,
		parentID,
		modelCat.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrValidation, modelCat.ParentCategoryID)
		}
		return fmt.Errorf("failed to execute update category %s: %w", modelCat.CategoryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category", modelCat.CategoryID)
	}
	return nil
}

// DeleteCategory removes a category. Deletes are rejected while products or
// child categories still reference it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Restricted by referencing rows
			return fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category", categoryID)
	}
	return nil
}
