package dto

import (
	"time"

	"github.com/procurio/procure_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to post a new purchase.
// TotalPrice must be strictly positive; the service enforces that since the
// binding layer cannot inspect decimal values.
type CreatePurchaseRequest struct {
	ProductID          string          `json:"productID" binding:"required,entityid"`
	SupplierID         string          `json:"supplierID" binding:"required,entityid"`
	Quantity           int64           `json:"quantity" binding:"required,gt=0"`
	TotalPrice         decimal.Decimal `json:"totalPrice" binding:"required"`
	ReceiptImage       string          `json:"receiptImage" binding:"required"` // opaque storage reference
	FinancialAccountID string          `json:"financialAccountID" binding:"required,entityid"`
}

// PurchaseResponse defines the data returned for a purchase record.
type PurchaseResponse struct {
	PurchaseID         string          `json:"purchaseID"`
	ProductID          string          `json:"productID"`
	SupplierID         string          `json:"supplierID"`
	Quantity           int64           `json:"quantity"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	ReceiptImage       string          `json:"receiptImage"`
	FinancialAccountID string          `json:"financialAccountID"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:         p.PurchaseID,
		ProductID:          p.ProductID,
		SupplierID:         p.SupplierID,
		Quantity:           p.Quantity,
		TotalPrice:         p.TotalPrice,
		ReceiptImage:       p.ReceiptImage,
		FinancialAccountID: p.AccountID,
		CreatedAt:          p.CreatedAt,
		LastUpdatedAt:      p.LastUpdatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to response DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return res
}

// ListPurchasesParams defines query parameters for listing purchases.
// At most one of the reference filters may be set.
type ListPurchasesParams struct {
	Limit      int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset     int    `form:"offset,default=0" binding:"omitempty,min=0"`
	ProductID  string `form:"productID" binding:"omitempty,entityid"`
	SupplierID string `form:"supplierID" binding:"omitempty,entityid"`
	AccountID  string `form:"financialAccountID" binding:"omitempty,entityid"`
}

// ListPurchasesResponse wraps the list of purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}
