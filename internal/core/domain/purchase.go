package domain

import "github.com/shopspring/decimal"

// Purchase is the immutable record of one stock purchase posting: exactly one
// debit of TotalPrice against the financial account and one credit of
// Quantity to the product's stock. Deleting a purchase reverses both.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"`
	ProductID    string          `json:"productID"`
	SupplierID   string          `json:"supplierID"`
	Quantity     int64           `json:"quantity"`     // >= 1
	TotalPrice   decimal.Decimal `json:"totalPrice"`   // > 0
	ReceiptImage string          `json:"receiptImage"` // opaque storage reference
	AccountID    string          `json:"financialAccountID"`
	AuditFields
}
