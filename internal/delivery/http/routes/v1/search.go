package v1

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/delivery/http/handler"
)

func RegisterSearch(
	r fiber.Router,
	suggest *handler.SuggestHandler,
	products *handler.ProductsHandler,
	categories *handler.CategoriesHandler,
) {
	if r == nil {
		return
	}

	if suggest != nil {
		suggest.RegisterRoutes(r)
	}
	if products != nil {
		products.RegisterRoutes(r)
	}
	if categories != nil {
		categories.RegisterRoutes(r)
	}
}
