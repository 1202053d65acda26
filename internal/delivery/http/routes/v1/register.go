package v1

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/delivery/http/handler"
	"vitrine/internal/ws"
)

func Register(
	r fiber.Router,
	suggest *handler.SuggestHandler,
	products *handler.ProductsHandler,
	categories *handler.CategoriesHandler,
	suggestWS *ws.Handler,
) {
	if r == nil {
		return
	}

	RegisterSearch(r, suggest, products, categories)
	RegisterWS(r, suggestWS)
}
