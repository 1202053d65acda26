package catalog

import "github.com/google/uuid"

// Category is a catalog section. Subcategories carry a non-nil ParentID.
type Category struct {
	ID       uuid.UUID
	Name     string
	Icon     string
	Slug     string
	ParentID *uuid.UUID
}

// IsSubcategory reports whether the category hangs under a parent section.
func (c Category) IsSubcategory() bool {
	return c.ParentID != nil
}
