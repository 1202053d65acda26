package routes

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/delivery/http/handler"
	v1 "vitrine/internal/delivery/http/routes/v1"
	"vitrine/internal/ws"
)

type Registry struct {
	health     *handler.HealthHandler
	suggest    *handler.SuggestHandler
	products   *handler.ProductsHandler
	categories *handler.CategoriesHandler
	suggestWS  *ws.Handler
}

func NewRegistry(
	suggest *handler.SuggestHandler,
	products *handler.ProductsHandler,
	categories *handler.CategoriesHandler,
	suggestWS *ws.Handler,
	sessions handler.SessionCounter,
) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(sessions),
		suggest:    suggest,
		products:   products,
		categories: categories,
		suggestWS:  suggestWS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.suggest, r.products, r.categories, r.suggestWS)
}
