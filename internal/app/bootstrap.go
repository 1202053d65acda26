package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"vitrine/internal/config"
	"vitrine/internal/delivery/http/handler"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/routes"
	"vitrine/internal/repository"
	"vitrine/internal/usecase"
	"vitrine/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)

	productRepo := repository.NewPostgresProductRepository(c.DB)
	categoryRepo := repository.NewPostgresCategoryRepository(c.DB)

	snapshots := usecase.NewSnapshotLoader(productRepo, categoryRepo, c.Logger)
	suggestUC := usecase.NewSuggestUsecase(snapshots, c.Logger)
	catalogUC := usecase.NewCatalogUsecase(snapshots, c.Cache, c.Logger)

	hub := ws.NewHub(c.Logger)
	wsHandler := ws.NewHandler(hub, suggestUC, c.Logger)

	registry := routes.NewRegistry(
		handler.NewSuggestHandler(suggestUC),
		handler.NewProductsHandler(catalogUC, productRepo),
		handler.NewCategoriesHandler(categoryRepo),
		wsHandler,
		hub,
	)
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
