package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-directory/internal/directory"
	dirhttp "restaurant-directory/internal/directory/adapter/http"
	"restaurant-directory/internal/directory/adapter/persistence/mongodb"
	"restaurant-directory/internal/directory/config"
	apperrors "restaurant-directory/internal/shared/errors"
	"restaurant-directory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	appLogger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFormat)
	appLogger.Info("configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectWait)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		appLogger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appLogger.Info("MongoDB connection established")

	module, err := directory.NewModule(ctx, client.Database(cfg.DatabaseName), appLogger)
	if err != nil {
		appLogger.Fatalf("failed to initialize directory module: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Restaurant Directory API v1.0",
		UnescapePath: true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			appLogger.Errorf("unhandled error: %v", err)
			return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(dirhttp.RequestID())
	app.Use(dirhttp.RequestLogger(appLogger))
	app.Use(dirhttp.Metrics())

	app.Get("/metrics", dirhttp.MetricsHandler())
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := module.HealthCheck(healthCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"timestamp": time.Now().UTC(),
		})
	})

	module.RegisterRoutes(app)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(cfg.Addr())
	}()
	appLogger.Infof("HTTP server listening on %s", cfg.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Fatalf("server failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("server forced to shutdown: %v", err)
		}
		appLogger.Info("HTTP server stopped")
	}
}
