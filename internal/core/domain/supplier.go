package domain

// Supplier is a vendor purchases are sourced from. All fields are required.
type Supplier struct {
	SupplierID   string `json:"supplierID"`
	Name         string `json:"name"`
	CompanyName  string `json:"companyName"`
	ContactEmail string `json:"contactEmail"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	AuditFields
}
