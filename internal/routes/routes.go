// Package routes defines the API routing configuration.
package routes

import (
	"fraudtriage/internal/handlers"
	"fraudtriage/internal/middleware"
	"fraudtriage/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Triage  *handlers.TriageHandler
	Health  *handlers.HealthHandler
	Metrics fiber.Handler
	Auth    *middleware.AuthMiddleware
	Limiter limiter.Config
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Fraud Alert Triage API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", h.Health.HealthCheck)
	if h.Metrics != nil {
		app.Get("/metrics", h.Metrics)
	}

	analyzeLimiter := limiter.New(h.Limiter)

	// Unversioned path kept for existing callers.
	app.Post("/analyze-transaction", analyzeLimiter, h.Triage.AnalyzeTransaction)

	api := app.Group("/api")
	api.Post("/analyze-transaction", analyzeLimiter, h.Triage.AnalyzeTransaction)

	alerts := api.Group("/alerts", h.Auth.Handler, middleware.HasPermission(models.PermissionAlertsRead))
	alerts.Get("/", h.Triage.ListAlerts)
	alerts.Get("/:id", h.Triage.GetAlert)

	admin := api.Group("/admin", h.Auth.Handler, middleware.HasPermission(models.PermissionAlertsAdmin))
	admin.Get("/cache-stats", h.Health.CacheStats)
}
