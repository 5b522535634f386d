package handlers

import (
	"context"
	"time"

	"fraudtriage/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewHealthHandler accepts nil dependencies for disabled backends.
func NewHealthHandler(db *gorm.DB, cache *cache.CacheService) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := "ok"
	services := fiber.Map{
		"database": "disabled",
		"redis":    "disabled",
	}

	if h.db != nil {
		services["database"] = "connected"
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			services["database"] = "unreachable"
			status = "degraded"
		}
	}

	if h.cache != nil {
		services["redis"] = "connected"
		if err := h.cache.HealthCheck(ctx); err != nil {
			services["redis"] = "unreachable"
			status = "degraded"
		}
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"services": services,
	})
}

func (h *HealthHandler) CacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"pool_stats": nil})
	}

	poolStats := h.cache.GetStats()
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
