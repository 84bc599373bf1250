package dto

import (
	"time"

	"github.com/procurio/procure_backend/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a new supplier.
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	CompanyName  string `json:"companyName" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Address      string `json:"address" binding:"required"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	CompanyName  *string `json:"companyName"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	PhoneNumber  *string `json:"phoneNumber"`
	Address      *string `json:"address"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"companyName"`
	ContactEmail  string    `json:"contactEmail"`
	PhoneNumber   string    `json:"phoneNumber"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		CompanyName:   s.CompanyName,
		ContactEmail:  s.ContactEmail,
		PhoneNumber:   s.PhoneNumber,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to response DTOs
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}
