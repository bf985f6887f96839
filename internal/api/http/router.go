package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/moderation-service/internal/api/http/handlers"
	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profiles       *handlers.ProfilesHandler
	Reports        *handlers.ReportsHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/staff/login", cfg.Auth.Login)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/profiles/search", cfg.Profiles.Search)
	admin.Patch("/profiles/:id", cfg.Profiles.Update)
	admin.Patch("/verification-reports/:id", cfg.Reports.Adjudicate)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEntrepreneur))
	orders.Get("/", cfg.Orders.List)
}
