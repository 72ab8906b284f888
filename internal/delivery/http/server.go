package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/org-directory/internal/config"
	"github.com/org-directory/internal/delivery/http/handler"
	"github.com/org-directory/internal/delivery/http/middleware"
	"github.com/org-directory/internal/repository/cache"
	"github.com/org-directory/internal/repository/postgres"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	db    *postgres.DB
	redis *cache.Redis

	// Handlers
	activityHandler     *handler.ActivityHandler
	buildingHandler     *handler.BuildingHandler
	organizationHandler *handler.OrganizationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *postgres.DB,
	redis *cache.Redis,
	activityHandler *handler.ActivityHandler,
	buildingHandler *handler.BuildingHandler,
	organizationHandler *handler.OrganizationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Organization Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		db:                  db,
		redis:               redis,
		activityHandler:     activityHandler,
		buildingHandler:     buildingHandler,
		organizationHandler: organizationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check: сервис жив, пока отвечают Postgres и Redis
	s.app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		status := "healthy"
		code := fiber.StatusOK
		checks := fiber.Map{"postgres": "ok", "redis": "ok"}

		if err := s.db.Health(ctx); err != nil {
			checks["postgres"] = err.Error()
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}
		if err := s.redis.Health(ctx); err != nil {
			checks["redis"] = err.Error()
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": checks,
			"time":   time.Now(),
		})
	})

	api := s.app.Group("/api/v1", middleware.BearerAuth(s.config.Auth.Token))

	// Activity routes
	api.Post("/activities", s.activityHandler.Create)
	api.Get("/activities", s.activityHandler.List)
	api.Get("/activities/:id", s.activityHandler.Detail)
	api.Patch("/activities/:id", s.activityHandler.Update)
	api.Delete("/activities/:id", s.activityHandler.Delete)

	// Building routes
	api.Post("/buildings", s.buildingHandler.Create)
	api.Get("/buildings", s.buildingHandler.List)
	api.Get("/buildings/:id", s.buildingHandler.Detail)
	api.Patch("/buildings/:id", s.buildingHandler.Update)
	api.Delete("/buildings/:id", s.buildingHandler.Delete)

	// Organization routes
	api.Post("/organizations", s.organizationHandler.Create)
	api.Get("/organizations", s.organizationHandler.List)
	api.Get("/organizations/:id", s.organizationHandler.Detail)
	api.Patch("/organizations/:id", s.organizationHandler.Update)
	api.Delete("/organizations/:id", s.organizationHandler.Delete)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
