package catalog

import (
	"time"

	"github.com/google/uuid"
)

// NamePlaceholder is shown when a product carries no name in any locale.
const NamePlaceholder = "Produto"

// localePriority is the fixed fallback order for localized fields.
var localePriority = []string{"pt", "en", "fr", "de"}

// LocalizedText maps a locale code to a display string.
type LocalizedText map[string]string

// Resolve walks the fixed locale priority order and returns the first
// non-empty value, or placeholder when every locale is empty or absent.
func (t LocalizedText) Resolve(placeholder string) string {
	for _, loc := range localePriority {
		if v, ok := t[loc]; ok && v != "" {
			return v
		}
	}
	return placeholder
}

// Product is an immutable catalog entry. DisplayName and DisplayDescription
// are resolved once at the repository boundary; the search engine never
// re-derives them.
type Product struct {
	ID                 uuid.UUID
	Name               LocalizedText
	Description        LocalizedText
	DisplayName        string
	DisplayDescription string
	Price              float64
	PromotionalPrice   *float64
	CategoryID         *uuid.UUID
	SubcategoryID      *uuid.UUID
	Colors             []string
	Sizes              []string
	Stock              int
	Images             []string
	CreatedAt          time.Time
}

// EffectivePrice is the promotional price when present and lower than the
// base price, else the base price.
func (p Product) EffectivePrice() float64 {
	if p.PromotionalPrice != nil && *p.PromotionalPrice < p.Price {
		return *p.PromotionalPrice
	}
	return p.Price
}

// InStock reports whether the product can be purchased. Out-of-stock
// products still surface in search results.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Thumbnail returns the canonical image reference, or "" when the product
// has no images.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
