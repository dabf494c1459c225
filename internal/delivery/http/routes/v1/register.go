package v1

import (
	"skill-fit/internal/delivery/http/handler"
	"skill-fit/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Fitness        *handler.FitnessHandler
	Recommendation *handler.RecommendationHandler
	Career         *handler.CareerHandler
	Catalog        *handler.CatalogHandler
}

// Register mounts the authenticated v1 surface. Every route in this group
// requires a valid bearer token.
func Register(r fiber.Router, authMw *middleware.AuthMiddleware, h Handlers) {
	if r == nil || authMw == nil {
		return
	}

	protected := r.Group("", authMw.Middleware())

	if h.Fitness != nil {
		h.Fitness.RegisterRoutes(protected)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(protected)
	}
	if h.Career != nil {
		h.Career.RegisterRoutes(protected)
	}
	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(protected)
	}
}
