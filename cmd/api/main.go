package main

// @title Organization Directory API
// @version 1.0.0
// @description Справочник организаций: здания, организации и трёхуровневый классификатор деятельностей. Предоставляет CRUD по всем трём сущностям, фильтрацию организаций по зданию и деятельности (с потомками), поиск по подстроке имени и геопоиск зданий в радиусе.

// @contact.name API Support
// @contact.email support@org-directory.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Статический токен в формате "Bearer {token}"

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/org-directory/docs"
	"github.com/org-directory/internal/config"
	httpDelivery "github.com/org-directory/internal/delivery/http"
	"github.com/org-directory/internal/delivery/http/handler"
	"github.com/org-directory/internal/pkg/logger"
	"github.com/org-directory/internal/repository/cache"
	"github.com/org-directory/internal/repository/postgres"
	"github.com/org-directory/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Organization Directory")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	activityRepo := postgres.NewActivityRepository(db)
	buildingRepo := postgres.NewBuildingRepository(db)
	organizationRepo := postgres.NewOrganizationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	activityUC := usecase.NewActivityUseCase(
		activityRepo,
		cacheRepo,
		log,
		cfg.Cache.ActivitiesCacheTTL,
	)

	buildingUC := usecase.NewBuildingUseCase(buildingRepo, log)

	organizationUC := usecase.NewOrganizationUseCase(
		organizationRepo,
		activityRepo,
		buildingRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	activityHandler := handler.NewActivityHandler(activityUC, log)
	buildingHandler := handler.NewBuildingHandler(buildingUC, cfg.Pagination, log)
	organizationHandler := handler.NewOrganizationHandler(organizationUC, cfg.Pagination, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		db,
		redisClient,
		activityHandler,
		buildingHandler,
		organizationHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
