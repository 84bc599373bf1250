package memory

import (
	"context"
	"fmt"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
)

// CategoryRepository is the in-memory category backend.
type CategoryRepository struct {
	store *Store
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categories[category.CategoryID]; exists {
		return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, category.CategoryID)
	}
	if category.ParentCategoryID != "" {
		if _, ok := s.categories[category.ParentCategoryID]; !ok {
			return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrValidation, category.ParentCategoryID)
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return nil, apperrors.NewNotFoundError("category", categoryID)
	}
	return &category, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sortByCreation(categories,
		func(c domain.Category) int64 { return c.CreatedAt.UnixNano() },
		func(c domain.Category) string { return c.CategoryID })
	return paginate(categories, limit, offset), nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.CategoryID]; !ok {
		return apperrors.NewNotFoundError("category", category.CategoryID)
	}
	if category.ParentCategoryID != "" {
		if _, ok := s.categories[category.ParentCategoryID]; !ok {
			return fmt.Errorf("%w: parent category %s does not exist", apperrors.ErrValidation, category.ParentCategoryID)
		}
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return apperrors.NewNotFoundError("category", categoryID)
	}
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			return fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
	}
	for _, c := range s.categories {
		if c.ParentCategoryID == categoryID {
			return fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
	}
	delete(s.categories, categoryID)
	return nil
}
