package search

import (
	"github.com/google/uuid"

	"vitrine/internal/catalog"
)

// Availability filter values.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

// FilterState is the active constraint set of the catalog page. Every field
// defaults to open: an absent constraint restricts nothing. The free-text
// Query is not an attribute predicate; it narrows through scoring and is
// composed by the caller in either order.
type FilterState struct {
	Query         string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Colors        []string
	Sizes         []string
	MinPrice      *float64
	MaxPrice      *float64
	Availability  string
}

// Match reports whether a product passes every active attribute predicate.
// Price bounds are inclusive and use the effective price.
func (f FilterState) Match(p catalog.Product) bool {
	if f.CategoryID != nil {
		if p.CategoryID == nil || *p.CategoryID != *f.CategoryID {
			return false
		}
	}
	if f.SubcategoryID != nil {
		if p.SubcategoryID == nil || *p.SubcategoryID != *f.SubcategoryID {
			return false
		}
	}
	if !intersects(p.Colors, f.Colors) {
		return false
	}
	if !intersects(p.Sizes, f.Sizes) {
		return false
	}

	price := p.EffectivePrice()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}

	switch f.Availability {
	case AvailabilityInStock:
		if !p.InStock() {
			return false
		}
	case AvailabilityOutOfStock:
		if p.InStock() {
			return false
		}
	}

	return true
}

// ApplyFilters narrows a catalog snapshot to the products passing the
// attribute predicates, preserving snapshot order. The input is never
// mutated.
func ApplyFilters(products []catalog.Product, f FilterState) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// intersects is the color/size set predicate: an empty selection passes
// everything, otherwise the product attribute set must overlap it.
func intersects(have, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		for _, h := range have {
			if h == s {
				return true
			}
		}
	}
	return false
}
