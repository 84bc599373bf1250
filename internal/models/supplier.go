package models

// Supplier represents a row in the suppliers table.
type Supplier struct {
	SupplierID   string `db:"supplier_id"`
	Name         string `db:"name"`
	CompanyName  string `db:"company_name"`
	ContactEmail string `db:"contact_email"`
	PhoneNumber  string `db:"phone_number"`
	Address      string `db:"address"`
	AuditFields
}
