package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/catalog"
	"vitrine/internal/search"
)

// Sort options of the catalog page. Relevance order applies whenever a
// free-text query is present; the explicit options matter only without one.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

type CatalogPageParams struct {
	Filter search.FilterState
	SortBy string
	Page   int
}

type ProductItem struct {
	ProductID        uuid.UUID
	Name             string
	Description      string
	Price            float64
	PromotionalPrice *float64
	EffectivePrice   float64
	Colors           []string
	Sizes            []string
	Stock            int
	Images           []string
	CategoryID       *uuid.UUID
	SubcategoryID    *uuid.UUID
	Score            int
}

type CatalogPageResult struct {
	Products   []ProductItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type CatalogUsecase interface {
	ListProducts(ctx context.Context, params CatalogPageParams) (CatalogPageResult, error)
}

type Catalog struct {
	snapshots SnapshotProvider
	cache     SearchCache
	logger    *log.Logger
}

func NewCatalogUsecase(snapshots SnapshotProvider, cache SearchCache, logger *log.Logger) *Catalog {
	return &Catalog{snapshots: snapshots, cache: cache, logger: logger}
}

// ListProducts runs the catalog filter page: attribute predicates and text
// relevance intersect over the same snapshot, then the surviving set is
// ordered and paginated. Both narrowing steps are pure, so their order does
// not change the outcome.
func (u *Catalog) ListProducts(ctx context.Context, params CatalogPageParams) (CatalogPageResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	switch params.SortBy {
	case "", SortNewest, SortPriceAsc, SortPriceDesc:
	default:
		return CatalogPageResult{}, ErrInvalidInput
	}

	cacheKey := CatalogCacheKey(params)
	lockKey := CatalogLockKey(cacheKey)

	if u.cache != nil {
		var cached CatalogPageResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Catalog] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			time.Sleep(150 * time.Millisecond)
			var cached CatalogPageResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	snap := u.snapshots.Load(ctx)

	survivors := search.ApplyFilters(snap.Products, params.Filter)

	query := strings.TrimSpace(params.Filter.Query)
	var items []ProductItem
	if query != "" {
		scored := make([]search.Scored[catalog.Product], 0, len(survivors))
		for _, p := range survivors {
			s := search.Score(query, p.DisplayName, p.DisplayDescription, search.CatalogWeights)
			if s == 0 {
				continue
			}
			scored = append(scored, search.Scored[catalog.Product]{Item: p, Score: s})
		}
		ranked := search.Rank(scored)
		items = make([]ProductItem, 0, len(ranked))
		for _, sc := range ranked {
			items = append(items, productItem(sc.Item, sc.Score))
		}
	} else {
		ordered := sortProducts(survivors, params.SortBy)
		items = make([]ProductItem, 0, len(ordered))
		for _, p := range ordered {
			items = append(items, productItem(p, 0))
		}
	}

	total := len(items)
	pageSize := search.CatalogPageSize
	totalPages := (total + pageSize - 1) / pageSize

	start := (params.Page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := CatalogPageResult{
		Products:   items[start:end],
		Total:      total,
		Page:       params.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if u.logger != nil {
			u.logger.Printf("[Catalog] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

// sortProducts orders the no-query catalog view. Snapshot load order is
// already newest-first, so SortNewest and the default are a copy.
func sortProducts(products []catalog.Product, sortBy string) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() > out[j].EffectivePrice()
		})
	}
	return out
}

func productItem(p catalog.Product, score int) ProductItem {
	return ProductItem{
		ProductID:        p.ID,
		Name:             p.DisplayName,
		Description:      p.DisplayDescription,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		EffectivePrice:   p.EffectivePrice(),
		Colors:           p.Colors,
		Sizes:            p.Sizes,
		Stock:            p.Stock,
		Images:           p.Images,
		CategoryID:       p.CategoryID,
		SubcategoryID:    p.SubcategoryID,
		Score:            score,
	}
}
