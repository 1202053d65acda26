package handler

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/delivery/http/dto"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/pkg/response"
	"vitrine/internal/repository"
)

type CategoriesHandler struct {
	categories repository.CategoryRepository
}

func NewCategoriesHandler(categories repository.CategoryRepository) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

func (h *CategoriesHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/categories", h.HandleListCategories)
}

func (h *CategoriesHandler) HandleListCategories(c fiber.Ctx) error {
	cats, err := h.categories.ListAll(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.CategoryResponse{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Icon:       cat.Icon,
			Slug:       cat.Slug,
			ParentID:   cat.ParentID,
		})
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}
