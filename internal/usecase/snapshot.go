package usecase

import (
	"context"
	"log"

	"vitrine/internal/catalog"
	"vitrine/internal/repository"
)

// Snapshot is the immutable in-memory catalog one search session evaluates
// against. The engine never mutates it.
type Snapshot struct {
	Products   []catalog.Product
	Categories []catalog.Category
}

// SnapshotProvider supplies the catalog snapshot to the search paths.
type SnapshotProvider interface {
	Load(ctx context.Context) Snapshot
}

type SnapshotLoader struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	logger     *log.Logger
}

func NewSnapshotLoader(products repository.ProductRepository, categories repository.CategoryRepository, logger *log.Logger) *SnapshotLoader {
	return &SnapshotLoader{products: products, categories: categories, logger: logger}
}

// Load fetches the catalog fail-open: a fetch error is logged and yields an
// empty snapshot, so scoring proceeds over zero candidates and the caller
// sees "no results" instead of a failure.
func (l *SnapshotLoader) Load(ctx context.Context) Snapshot {
	snap := Snapshot{Products: []catalog.Product{}, Categories: []catalog.Category{}}
	if l == nil {
		return snap
	}

	if l.products != nil {
		products, err := l.products.ListActive(ctx)
		if err != nil {
			if l.logger != nil {
				l.logger.Printf("[Catalog] product fetch failed, serving empty snapshot: %v", err)
			}
		} else {
			snap.Products = products
		}
	}

	if l.categories != nil {
		categories, err := l.categories.ListAll(ctx)
		if err != nil {
			if l.logger != nil {
				l.logger.Printf("[Catalog] category fetch failed, serving empty snapshot: %v", err)
			}
		} else {
			snap.Categories = categories
		}
	}

	return snap
}
