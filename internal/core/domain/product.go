package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry with an on-hand stock count.
// Stock is only ever mutated by purchase postings and their reversals; it
// must never go negative.
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // unit sale price, >= 0
	Stock       int64           `json:"stock"` // on-hand quantity, >= 0
	CategoryID  string          `json:"categoryID"`
	AuditFields
}
