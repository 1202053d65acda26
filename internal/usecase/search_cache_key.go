package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

type catalogCacheKeyInput struct {
	Query         string   `json:"query"`
	CategoryID    string   `json:"category_id"`
	SubcategoryID string   `json:"subcategory_id"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
	Availability  string   `json:"availability"`
	SortBy        string   `json:"sort_by"`
	Page          int      `json:"page"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeCacheSet(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// CatalogCacheKey derives a stable key for one catalog page evaluation.
// Equivalent filter states (ordering, case, spacing) share a key.
func CatalogCacheKey(params CatalogPageParams) string {
	in := catalogCacheKeyInput{
		Query:        normalizeCacheValue(params.Filter.Query),
		Colors:       normalizeCacheSet(params.Filter.Colors),
		Sizes:        normalizeCacheSet(params.Filter.Sizes),
		MinPrice:     params.Filter.MinPrice,
		MaxPrice:     params.Filter.MaxPrice,
		Availability: params.Filter.Availability,
		SortBy:       normalizeCacheValue(params.SortBy),
		Page:         params.Page,
	}
	if params.Filter.CategoryID != nil {
		in.CategoryID = params.Filter.CategoryID.String()
	}
	if params.Filter.SubcategoryID != nil {
		in.SubcategoryID = params.Filter.SubcategoryID.String()
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "catalog:page:" + hex.EncodeToString(sum[:])
}

func CatalogLockKey(cacheKey string) string {
	if strings.HasPrefix(cacheKey, "catalog:page:") {
		return "catalog:lock:" + strings.TrimPrefix(cacheKey, "catalog:page:")
	}
	return "catalog:lock:" + cacheKey
}
