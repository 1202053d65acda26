package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"vitrine/internal/catalog"
)

type staticSnapshots struct {
	snap Snapshot
}

func (s staticSnapshots) Load(context.Context) Snapshot { return s.snap }

func namedProduct(name string) catalog.Product {
	return catalog.Product{
		ID:          uuid.New(),
		DisplayName: name,
		Price:       100,
		Stock:       1,
	}
}

type countingSnapshots struct {
	snap  Snapshot
	loads int
}

func (s *countingSnapshots) Load(context.Context) Snapshot {
	s.loads++
	return s.snap
}

func TestSuggest_SessionPinsSnapshot(t *testing.T) {
	provider := &countingSnapshots{snap: Snapshot{Products: []catalog.Product{namedProduct("Mala de Couro")}}}
	uc := NewSuggestUsecase(provider, nil)

	session := uc.Session(context.Background())
	if provider.loads != 1 {
		t.Fatalf("session start must load the catalog once, loads=%d", provider.loads)
	}

	// the backing catalog changes mid-session
	provider.snap = Snapshot{Products: []catalog.Product{namedProduct("Vestido Novo")}}

	for _, q := range []string{"mala", "couro", "mala de couro"} {
		res, err := session.Suggest(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Products) != 1 || res.Products[0].Name != "Mala de Couro" {
			t.Fatalf("query %q must evaluate against the pinned snapshot, got %+v", q, res.Products)
		}
	}
	if provider.loads != 1 {
		t.Fatalf("session evaluations must not refetch the catalog, loads=%d", provider.loads)
	}
}

func TestSuggest_EmptyQueryShowsPopular(t *testing.T) {
	products := make([]catalog.Product, 0, 9)
	for i := 0; i < 9; i++ {
		products = append(products, namedProduct(fmt.Sprintf("Produto %d", i)))
	}
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Products: products}}, nil)

	res, err := uc.Suggest(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Popular {
		t.Fatalf("expected the popular set")
	}
	if len(res.Products) != 5 {
		t.Fatalf("popular set must hold 5 products, got %d", len(res.Products))
	}
	if res.Products[0].ProductID != products[0].ID {
		t.Fatalf("popular set must keep snapshot order")
	}
}

func TestSuggest_SingleCharHidesSuggestions(t *testing.T) {
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Products: []catalog.Product{namedProduct("Mala")}}}, nil)

	res, err := uc.Suggest(context.Background(), "m")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Popular || len(res.Products) != 0 || len(res.Categories) != 0 {
		t.Fatalf("single-char query must return nothing, got %+v", res)
	}
}

func TestSuggest_TopKTruncation(t *testing.T) {
	products := make([]catalog.Product, 0, 50)
	for i := 0; i < 50; i++ {
		products = append(products, namedProduct(fmt.Sprintf("Mala Clássica %d", i)))
	}
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Products: products}}, nil)

	res, err := uc.Suggest(context.Background(), "mala")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Products) != 8 {
		t.Fatalf("expected 8 suggestions, got %d", len(res.Products))
	}
	for i := 1; i < len(res.Products); i++ {
		if res.Products[i].Score > res.Products[i-1].Score {
			t.Fatalf("suggestions not in descending score order at %d", i)
		}
	}
}

func TestSuggest_SynonymQueriesSurfaceSameProduct(t *testing.T) {
	target := namedProduct("Mala de Couro Preta")
	snap := Snapshot{Products: []catalog.Product{
		namedProduct("Vestido Longo"),
		target,
		namedProduct("Camisa Social"),
	}}
	uc := NewSuggestUsecase(staticSnapshots{snap}, nil)

	for _, q := range []string{"bolsa", "mala"} {
		res, err := uc.Suggest(context.Background(), q)
		if err != nil {
			t.Fatalf("query %q: unexpected err: %v", q, err)
		}
		found := false
		for _, p := range res.Products {
			if p.ProductID == target.ID {
				found = true
				if p.Score < 80 {
					t.Fatalf("query %q: score %d below synonym tier", q, p.Score)
				}
			}
		}
		if !found {
			t.Fatalf("query %q must surface the bag product", q)
		}
	}
}

func TestSuggest_DescriptionMatchesAtSecondaryTier(t *testing.T) {
	p := catalog.Product{
		ID:                 uuid.New(),
		DisplayName:        "Vestido Longo",
		DisplayDescription: "confeccionado em couro sintético",
		Price:              100,
		Stock:              1,
	}
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Products: []catalog.Product{p}}}, nil)

	res, err := uc.Suggest(context.Background(), "couro")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Products) != 1 {
		t.Fatalf("description match must surface the product, got %d", len(res.Products))
	}
	if res.Products[0].Score != 50 {
		t.Fatalf("description substring scores at the secondary tier, got %d", res.Products[0].Score)
	}
}

func TestSuggest_ZeroScoreExcluded(t *testing.T) {
	snap := Snapshot{Products: []catalog.Product{
		namedProduct("Vestido Longo"),
		namedProduct("Cinto de Couro"),
	}}
	uc := NewSuggestUsecase(staticSnapshots{snap}, nil)

	res, err := uc.Suggest(context.Background(), "vestido")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Products) != 1 {
		t.Fatalf("non-matching products must be excluded, got %d", len(res.Products))
	}
	if res.Products[0].Name != "Vestido Longo" {
		t.Fatalf("unexpected product %q", res.Products[0].Name)
	}
}

func TestSuggest_CategorySuggestionsCapped(t *testing.T) {
	cats := make([]catalog.Category, 0, 6)
	for i := 0; i < 6; i++ {
		cats = append(cats, catalog.Category{ID: uuid.New(), Name: fmt.Sprintf("Vestidos %d", i)})
	}
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Categories: cats}}, nil)

	res, err := uc.Suggest(context.Background(), "vestidos")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Categories) != 3 {
		t.Fatalf("expected 3 category suggestions, got %d", len(res.Categories))
	}
}

func TestSuggest_EmptySnapshotFailOpen(t *testing.T) {
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{}}, nil)

	res, err := uc.Suggest(context.Background(), "mala")
	if err != nil {
		t.Fatalf("empty snapshot must not error: %v", err)
	}
	if len(res.Products) != 0 {
		t.Fatalf("expected no results over an empty snapshot")
	}
}

func TestSuggest_OutOfStockStillSurfaces(t *testing.T) {
	p := namedProduct("Mala Esgotada")
	p.Stock = 0
	uc := NewSuggestUsecase(staticSnapshots{Snapshot{Products: []catalog.Product{p}}}, nil)

	res, err := uc.Suggest(context.Background(), "mala")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Products) != 1 || res.Products[0].InStock {
		t.Fatalf("out-of-stock product must surface flagged, got %+v", res.Products)
	}
}
