// Package main provides the AutoFlow API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/autoflowai/autoflow/pkg/catalog"
	"github.com/autoflowai/autoflow/pkg/eventbus"
	"github.com/autoflowai/autoflow/pkg/services"
	"github.com/autoflowai/autoflow/pkg/session"
	"github.com/autoflowai/autoflow/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger   *slog.Logger
	source   catalog.Source
	store    *session.Store
	eventBus eventbus.EventBus
	validate *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	source catalog.Source,
	store *session.Store,
	eventBus eventbus.EventBus,
) *API {
	return &API{
		logger:   logger,
		source:   source,
		store:    store,
		eventBus: eventBus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	gallery := services.NewGallery(a.source)
	canvas := services.NewCanvas(gallery, a.store, a.eventBus)

	handlers := web.NewAPIHandlers(gallery, canvas, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("AutoFlow API")
	})

	t := app.Group("/templates")
	t.Get("/", handlers.GetTemplates)
	t.Get("/:id", handlers.GetTemplate)
	t.Get("/:id/preview", handlers.GetTemplatePreview)
	t.Post("/:id/instantiate", handlers.InstantiateTemplate)

	app.Post("/canvas", handlers.StartCanvas)
	app.Get("/workflow-canvas/:id", handlers.MountCanvas)

	s := app.Group("/sessions")
	s.Get("/:id", handlers.GetSession)
	s.Post("/:id/chat", handlers.PostChat)
	s.Post("/:id/edges", handlers.PostEdge)
	s.Patch("/:id/nodes", handlers.PatchNodes)
	s.Post("/:id/steps/:stepId/select", handlers.SelectStep)

	app.Get("/agent-chat", handlers.GetAgentChat)
	app.Get("/tools-integrations", handlers.GetToolsIntegrations)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
