package models

import "github.com/shopspring/decimal"

// Purchase represents a row in the purchases table.
type Purchase struct {
	PurchaseID   string          `db:"purchase_id"`
	ProductID    string          `db:"product_id"`
	SupplierID   string          `db:"supplier_id"`
	Quantity     int64           `db:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	ReceiptImage string          `db:"receipt_image"`
	AccountID    string          `db:"financial_account_id"`
	AuditFields
}
