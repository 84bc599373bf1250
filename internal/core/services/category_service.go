package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	portssvc "github.com/procurio/procure_backend/internal/core/ports/services"
	"github.com/procurio/procure_backend/internal/dto"
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: repo}
}

// Ensure categoryServiceImpl implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	parentID := ""
	if req.ParentCategoryID != nil && *req.ParentCategoryID != "" {
		parentID = *req.ParentCategoryID
		if _, err := s.categoryRepo.FindCategoryByID(ctx, parentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewFieldError("parentCategoryID", "parent category does not exist")
			}
			s.LogError(ctx, err, "Failed to find parent category",
				slog.String("parent_category_id", parentID))
			return nil, err
		}
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:       uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID",
				slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		category.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		category.Description = *req.Description
		updated = true
	}
	if req.ParentCategoryID != nil {
		newParent := *req.ParentCategoryID
		if newParent != "" {
			if newParent == categoryID {
				return nil, apperrors.NewFieldError("parentCategoryID", "category cannot be its own parent")
			}
			if _, err := s.categoryRepo.FindCategoryByID(ctx, newParent); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.NewFieldError("parentCategoryID", "parent category does not exist")
				}
				return nil, err
			}
		}
		category.ParentCategoryID = newParent
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for category update",
			slog.String("category_id", categoryID))
		return category, nil
	}

	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully",
		slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete category",
				slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted successfully",
		slog.String("category_id", categoryID))
	return nil
}
