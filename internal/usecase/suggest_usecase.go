package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"vitrine/internal/catalog"
	"vitrine/internal/search"
)

type ProductSuggestion struct {
	ProductID uuid.UUID
	Name      string
	Price     float64
	Thumbnail string
	InStock   bool
	Score     int
}

type CategorySuggestion struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Slug       string
	Score      int
}

// SuggestResult is what the suggestions widget renders. Popular marks the
// default set shown for an empty query.
type SuggestResult struct {
	Products   []ProductSuggestion
	Categories []CategorySuggestion
	Popular    bool
}

// SuggestUsecase serves debounced query evaluations. Session pins the
// current catalog snapshot for an interactive session, so every keystroke of
// that session is scored against the same in-memory catalog without further
// I/O.
type SuggestUsecase interface {
	Suggest(ctx context.Context, query string) (SuggestResult, error)
	Session(ctx context.Context) SuggestUsecase
}

type Suggest struct {
	snapshots SnapshotProvider
	logger    *log.Logger
}

func NewSuggestUsecase(snapshots SnapshotProvider, logger *log.Logger) *Suggest {
	return &Suggest{snapshots: snapshots, logger: logger}
}

// pinnedSnapshot serves the snapshot captured when its session started.
type pinnedSnapshot struct {
	snap Snapshot
}

func (p pinnedSnapshot) Load(context.Context) Snapshot { return p.snap }

// Session loads the catalog once and returns a usecase bound to that
// snapshot for its whole lifetime.
func (u *Suggest) Session(ctx context.Context) SuggestUsecase {
	return &Suggest{snapshots: pinnedSnapshot{snap: u.snapshots.Load(ctx)}, logger: u.logger}
}

// Suggest evaluates one debounced query. Empty input yields the popular
// default set, a single character hides suggestions, two or more characters
// run the scored evaluation over the snapshot.
func (u *Suggest) Suggest(ctx context.Context, query string) (SuggestResult, error) {
	trimmed := strings.TrimSpace(query)

	switch len([]rune(trimmed)) {
	case 0:
		return u.popular(ctx), nil
	case 1:
		return SuggestResult{Products: []ProductSuggestion{}, Categories: []CategorySuggestion{}}, nil
	}

	snap := u.snapshots.Load(ctx)

	scoredProducts := make([]search.Scored[catalog.Product], 0, len(snap.Products))
	for _, p := range snap.Products {
		s := search.Score(trimmed, p.DisplayName, p.DisplayDescription, search.SuggestWeights)
		if s == 0 {
			continue
		}
		scoredProducts = append(scoredProducts, search.Scored[catalog.Product]{Item: p, Score: s})
	}
	topProducts := search.TopK(search.Rank(scoredProducts), search.SuggestProductLimit)

	scoredCategories := make([]search.Scored[catalog.Category], 0, len(snap.Categories))
	for _, c := range snap.Categories {
		s := search.Score(trimmed, c.Name, "", search.SuggestWeights)
		if s == 0 {
			continue
		}
		scoredCategories = append(scoredCategories, search.Scored[catalog.Category]{Item: c, Score: s})
	}
	topCategories := search.TopK(search.Rank(scoredCategories), search.SuggestCategoryLimit)

	out := SuggestResult{
		Products:   make([]ProductSuggestion, 0, len(topProducts)),
		Categories: make([]CategorySuggestion, 0, len(topCategories)),
	}
	for _, sp := range topProducts {
		out.Products = append(out.Products, productSuggestion(sp.Item, sp.Score))
	}
	for _, sc := range topCategories {
		out.Categories = append(out.Categories, CategorySuggestion{
			CategoryID: sc.Item.ID,
			Name:       sc.Item.Name,
			Icon:       sc.Item.Icon,
			Slug:       sc.Item.Slug,
			Score:      sc.Score,
		})
	}
	return out, nil
}

// popular bypasses scoring entirely: the first products of the snapshot in
// load order, capped at the popular limit.
func (u *Suggest) popular(ctx context.Context) SuggestResult {
	snap := u.snapshots.Load(ctx)

	n := len(snap.Products)
	if n > search.PopularLimit {
		n = search.PopularLimit
	}

	out := SuggestResult{
		Products:   make([]ProductSuggestion, 0, n),
		Categories: []CategorySuggestion{},
		Popular:    true,
	}
	for _, p := range snap.Products[:n] {
		out.Products = append(out.Products, productSuggestion(p, 0))
	}
	return out
}

func productSuggestion(p catalog.Product, score int) ProductSuggestion {
	return ProductSuggestion{
		ProductID: p.ID,
		Name:      p.DisplayName,
		Price:     p.EffectivePrice(),
		Thumbnail: p.Thumbnail(),
		InStock:   p.InStock(),
		Score:     score,
	}
}
