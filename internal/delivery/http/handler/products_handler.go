package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"vitrine/internal/catalog"
	"vitrine/internal/delivery/http/dto"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/pkg/response"
	"vitrine/internal/repository"
	"vitrine/internal/search"
	"vitrine/internal/usecase"
)

type ProductsHandler struct {
	uc       usecase.CatalogUsecase
	products repository.ProductRepository
}

func NewProductsHandler(uc usecase.CatalogUsecase, products repository.ProductRepository) *ProductsHandler {
	return &ProductsHandler{uc: uc, products: products}
}

func (h *ProductsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/products", h.HandleListProducts)
	r.Get("/products/:id", h.HandleGetProduct)
}

func (h *ProductsHandler) HandleGetProduct(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.products.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "success", productResponse(p))
}

func (h *ProductsHandler) HandleListProducts(c fiber.Ctx) error {
	filter := search.FilterState{
		Query:        c.Query("q"),
		Colors:       parseListQuery(c.Query("color")),
		Sizes:        parseListQuery(c.Query("size")),
		Availability: c.Query("availability"),
	}

	var err error
	if filter.CategoryID, err = parseUUIDQuery(c, "category"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if filter.SubcategoryID, err = parseUUIDQuery(c, "subcategory"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if filter.MinPrice, err = parseFloatQuery(c, "minPrice"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if filter.MaxPrice, err = parseFloatQuery(c, "maxPrice"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ListProducts(c.Context(), usecase.CatalogPageParams{
		Filter: filter,
		SortBy: c.Query("sortBy"),
		Page:   page,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ProductPageResponse{
		Products:   make([]dto.ProductResponse, 0, len(res.Products)),
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, dto.ProductResponse{
			ProductID:        p.ProductID,
			Name:             p.Name,
			Description:      p.Description,
			Price:            p.Price,
			PromotionalPrice: p.PromotionalPrice,
			EffectivePrice:   p.EffectivePrice,
			Colors:           p.Colors,
			Sizes:            p.Sizes,
			Stock:            p.Stock,
			InStock:          p.Stock > 0,
			Images:           p.Images,
			CategoryID:       p.CategoryID,
			SubcategoryID:    p.SubcategoryID,
		})
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}

func productResponse(p catalog.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:        p.ID,
		Name:             p.DisplayName,
		Description:      p.DisplayDescription,
		Price:            p.Price,
		PromotionalPrice: p.PromotionalPrice,
		EffectivePrice:   p.EffectivePrice(),
		Colors:           p.Colors,
		Sizes:            p.Sizes,
		Stock:            p.Stock,
		InStock:          p.InStock(),
		Images:           p.Images,
		CategoryID:       p.CategoryID,
		SubcategoryID:    p.SubcategoryID,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseUUIDQuery(c fiber.Ctx, key string) (*uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseFloatQuery(c fiber.Ctx, key string) (*float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
