package handler

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/delivery/http/dto"
	"vitrine/internal/pkg/response"
	"vitrine/internal/usecase"
)

// SuggestHandler serves the one-shot suggestion endpoint. Debouncing lives
// with the caller here; the websocket channel owns it server-side.
type SuggestHandler struct {
	uc usecase.SuggestUsecase
}

func NewSuggestHandler(uc usecase.SuggestUsecase) *SuggestHandler {
	return &SuggestHandler{uc: uc}
}

func (h *SuggestHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/suggest", h.HandleSuggest)
}

func (h *SuggestHandler) HandleSuggest(c fiber.Ctx) error {
	query := c.Query("q")

	res, err := h.uc.Suggest(c.Context(), query)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.SuggestionResponse{
		Query:      query,
		Popular:    res.Popular,
		Products:   make([]dto.ProductSuggestionResponse, 0, len(res.Products)),
		Categories: make([]dto.CategorySuggestionResponse, 0, len(res.Categories)),
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, dto.ProductSuggestionResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Thumbnail: p.Thumbnail,
			InStock:   p.InStock,
		})
	}
	for _, cat := range res.Categories {
		out.Categories = append(out.Categories, dto.CategorySuggestionResponse{
			CategoryID: cat.CategoryID,
			Name:       cat.Name,
			Icon:       cat.Icon,
			Slug:       cat.Slug,
		})
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}
