package models

// Category represents a row in the categories table.
// ParentCategoryID uses string for a nullable self-referencing foreign key.
type Category struct {
	CategoryID       string `db:"category_id"`
	Name             string `db:"name"`
	Description      string `db:"description"`
	ParentCategoryID string `db:"parent_category_id"` // Nullable
	AuditFields
}
