package app

import (
	"fmt"
	"strings"

	"skill-fit/internal/delivery/http/handler"
	"skill-fit/internal/delivery/http/middleware"
	"skill-fit/internal/delivery/http/routes"
	v1 "skill-fit/internal/delivery/http/routes/v1"
	"skill-fit/internal/pkg/jwt"
	"skill-fit/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap assembles the HTTP server around an initialized container and
// starts the websocket hub.
func Bootstrap(c *Container) (*App, error) {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.Name,
	})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	jwtSvc := jwt.NewHMACService(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	apiKeyMw := middleware.NewAPIKeyMiddleware(c.Config.Catalog.SyncAPIKeyHash)

	catalogHandler, err := handler.NewCatalogHandler(c.CatalogUC, c.Logger)
	if err != nil {
		return nil, err
	}

	handlers := v1.Handlers{
		Fitness:        handler.NewFitnessHandler(c.EvaluationUC),
		Recommendation: handler.NewRecommendationHandler(c.RecommendationUC),
		Career:         handler.NewCareerHandler(c.CareerUC),
		Catalog:        catalogHandler,
	}

	go c.Hub.Run()
	wsHandler := ws.NewHandler(c.Hub, c.Logger)

	routes.NewRegistry(handlers, authMw, apiKeyMw, wsHandler).Register(f)

	return &App{Fiber: f}, nil
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
