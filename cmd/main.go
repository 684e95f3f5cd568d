package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/saferoute/safe_route_navigator/internal/config"
	"github.com/saferoute/safe_route_navigator/internal/events"
	"github.com/saferoute/safe_route_navigator/internal/geocoding"
	v1 "github.com/saferoute/safe_route_navigator/internal/handler/http/v1"
	"github.com/saferoute/safe_route_navigator/internal/repository"
	"github.com/saferoute/safe_route_navigator/internal/routing"
	"github.com/saferoute/safe_route_navigator/internal/service"
	"github.com/saferoute/safe_route_navigator/internal/simulation"
	"github.com/saferoute/safe_route_navigator/internal/store"
	"github.com/saferoute/safe_route_navigator/pkg/logger"
	"github.com/saferoute/safe_route_navigator/pkg/postgres"
	redisclient "github.com/saferoute/safe_route_navigator/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/saferoute/safe_route_navigator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safe Route Navigator API
// @version 1.0
// @description Spatiotemporal risk engine scoring points and travel routes for personal safety.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Источник случайности симуляции: явный seed для воспроизводимости
	seed := cfg.SimSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Граница данных инцидентов и загрузка исторического набора
	incidentRepo := repository.NewCSVIncidentRepository(cfg.HistoryCSVPath, cfg.RealtimeCSVPath, log, rng)
	initial, err := incidentRepo.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load incident history: %v", err)
	}

	// Хранилище снимков и движок жизненного цикла
	snapshots := store.New()
	publisher := events.NewRedisPublisher(redisClient)
	engine := simulation.NewEngine(snapshots, incidentRepo, publisher, log, cfg, rng, initial)
	engine.Start(ctx)

	// Инициализация репозиториев и внешних клиентов
	historyRepo := repository.NewHistoryRepository(dbpool)
	geocoder := geocoding.NewNominatimClient(cfg.NominatimURL, cfg.ExternalTimeout)
	router := routing.NewOSRMClient(cfg.OSRMURL, cfg.ExternalTimeout)

	// Инициализация сервисов
	safetyService := service.NewSafetyService(snapshots, geocoder, router, historyRepo, publisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, log, cfg)

	// Настройка Gin роутера
	ginRouter := gin.Default()
	api := ginRouter.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
