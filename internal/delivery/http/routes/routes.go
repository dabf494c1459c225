package routes

import (
	"skill-fit/internal/delivery/http/handler"
	"skill-fit/internal/delivery/http/middleware"
	v1 "skill-fit/internal/delivery/http/routes/v1"
	"skill-fit/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health   *handler.HealthHandler
	handlers v1.Handlers
	catalog  *handler.CatalogHandler
	authMw   *middleware.AuthMiddleware
	apiKeyMw *middleware.APIKeyMiddleware
	wsh      *ws.Handler
}

func NewRegistry(
	handlers v1.Handlers,
	authMw *middleware.AuthMiddleware,
	apiKeyMw *middleware.APIKeyMiddleware,
	wsh *ws.Handler,
) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		handlers: handlers,
		catalog:  handlers.Catalog,
		authMw:   authMw,
		apiKeyMw: apiKeyMw,
		wsh:      wsh,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if r.wsh != nil {
		app.Get("/ws", r.wsh.HandleEventsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.authMw, r.handlers)

	if r.catalog != nil && r.apiKeyMw != nil {
		internal := app.Group("/internal", r.apiKeyMw.Middleware())
		r.catalog.RegisterInternalRoutes(internal)
	}
}
