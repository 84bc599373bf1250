package domain

// Category groups products in the catalog. ParentCategoryID allows nesting;
// the backend stores and returns the link but does not walk the hierarchy.
type Category struct {
	CategoryID       string `json:"categoryID"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parentCategoryID"` // empty when top-level
	AuditFields
}
