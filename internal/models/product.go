package models

import "github.com/shopspring/decimal"

// Product represents a row in the products table.
type Product struct {
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int64           `db:"stock"`
	CategoryID  string          `db:"category_id"`
	AuditFields
}
