// Package main is the entry point for the triage API.
// It loads configuration, connects the optional backends, wires the
// scoring and triage services and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraudtriage/internal/config"
	"fraudtriage/internal/handlers"
	"fraudtriage/internal/metrics"
	"fraudtriage/internal/middleware"
	"fraudtriage/internal/repositories"
	"fraudtriage/internal/repositories/cache"
	"fraudtriage/internal/routes"
	"fraudtriage/internal/services/scoring"
	"fraudtriage/internal/services/triage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewPrometheusCollector(prometheus.DefaultRegisterer)

	db, store := openStore(cfg)
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("⚠️ Failed to get database instance: %v", err)
		} else {
			go collector.StartDBStatsCollector(ctx, sqlDB, time.Minute)
		}
	}

	static := scoring.NewStaticScorer(cfg.StaticScore)
	var scorer scoring.Scorer = static
	var cacheService *cache.CacheService
	var assessmentCache triage.AssessmentCache
	if cfg.RedisEnabled {
		cacheService = repositories.InitCache(cfg)
		if err := cacheService.HealthCheck(ctx); err != nil {
			log.Printf("⚠️ Redis unavailable at startup: %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
		scorer = scoring.NewCachingScorer(scorer, cacheService, static.ModelID())
		assessmentCache = cacheService
	}
	defer repositories.Close()

	triageService := triage.NewService(scorer, store, assessmentCache, collector)

	app := fiber.New(fiber.Config{AppName: "fraudtriage"})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Handlers{
		Triage:  handlers.NewTriageHandler(triageService),
		Health:  handlers.NewHealthHandler(db, cacheService),
		Metrics: metrics.Handler(prometheus.DefaultGatherer),
		Auth:    middleware.NewAuthMiddleware(cfg.JWTSecret),
		Limiter: limiter.Config{
			Max:        cfg.AnalyzeRateMax,
			Expiration: cfg.AnalyzeRateSpan,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		},
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Server shutdown error: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
