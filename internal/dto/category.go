package dto

import (
	"time"

	"github.com/procurio/procure_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"` // Optional
	ParentCategoryID *string `json:"parentCategoryID" binding:"omitempty,entityid"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *string `json:"parentCategoryID" binding:"omitempty,entityid"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID       string    `json:"categoryID"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ParentCategoryID string    `json:"parentCategoryID"` // Empty when top-level
	CreatedAt        time.Time `json:"createdAt"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       cat.CategoryID,
		Name:             cat.Name,
		Description:      cat.Description,
		ParentCategoryID: cat.ParentCategoryID,
		CreatedAt:        cat.CreatedAt,
		LastUpdatedAt:    cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
