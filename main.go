// @title VidSpark API
// @version 1.0
// @description Scene timeline, caption and job API for generated videos.
// @BasePath /api/v1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"vidspark/config"
	_ "vidspark/docs"
	"vidspark/handlers"
	"vidspark/internal/cache"
	"vidspark/internal/db"
	"vidspark/internal/queue"
	"vidspark/middleware"
	"vidspark/utils"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		config.Log.Fatalf("Invalid configuration: %v", err)
	}
	log := config.InitLogger(settings.LogLevel)

	rest, err := config.NewRestClient(settings)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	dbClient := db.New(rest, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	h := handlers.NewApplicationHandler(
		dbClient,
		cache.NewTimelineCache(redisClient, settings.TimelineCacheTTL, log),
		queue.New(redisClient, queue.DefaultKey),
		log,
		settings.FrameRate,
		settings.DefaultSceneSeconds,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "API is healthy",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	h.RegisterRoutes(app.Group("/api/v1"))

	go func() {
		<-ctx.Done()
		log.Info("Shutting down API...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Shutdown did not complete cleanly")
		}
	}()

	log.Infof("Starting API on port %s...", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Info("API shut down gracefully.")
}
