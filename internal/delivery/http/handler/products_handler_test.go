package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"vitrine/internal/catalog"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/repository"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fakeProductRepo struct {
	product catalog.Product
}

func (f fakeProductRepo) ListActive(context.Context) ([]catalog.Product, error) {
	return []catalog.Product{f.product}, nil
}

func (f fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (catalog.Product, error) {
	if id == f.product.ID {
		return f.product, nil
	}
	return catalog.Product{}, repository.ErrProductNotFound
}

func newProductsTestApp(t *testing.T, repo repository.ProductRepository) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewProductsHandler(nil, repo)
	h.RegisterRoutes(app.Group("/api").Group("/v1"))
	return app
}

func TestHandleGetProduct_Found(t *testing.T) {
	promo := 79.9
	p := catalog.Product{
		ID:               uuid.New(),
		DisplayName:      "Mala de Couro Preta",
		Price:            129.9,
		PromotionalPrice: &promo,
		Stock:            3,
	}
	app := newProductsTestApp(t, fakeProductRepo{product: p})

	req := httptest.NewRequest("GET", "/api/v1/products/"+p.ID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var body struct {
		Name           string  `json:"name"`
		EffectivePrice float64 `json:"effective_price"`
		InStock        bool    `json:"in_stock"`
	}
	if err := json.Unmarshal(sr.Data, &body); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
	if body.Name != "Mala de Couro Preta" {
		t.Fatalf("unexpected name %q", body.Name)
	}
	if body.EffectivePrice != promo {
		t.Fatalf("promotional price must win, got %v", body.EffectivePrice)
	}
	if !body.InStock {
		t.Fatalf("expected in_stock=true")
	}
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	app := newProductsTestApp(t, fakeProductRepo{product: catalog.Product{ID: uuid.New()}})

	req := httptest.NewRequest("GET", "/api/v1/products/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 404 {
		t.Fatalf("expected status=404, got %d", sr.Status)
	}
}

func TestHandleGetProduct_BadID(t *testing.T) {
	app := newProductsTestApp(t, fakeProductRepo{product: catalog.Product{ID: uuid.New()}})

	req := httptest.NewRequest("GET", "/api/v1/products/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 400 {
		t.Fatalf("expected status=400, got %d", sr.Status)
	}
}
