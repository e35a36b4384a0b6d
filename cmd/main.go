package main

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/travel_safety_system/internal/client/vision"
	"github.com/shenikar/travel_safety_system/internal/client/weather"
	"github.com/shenikar/travel_safety_system/internal/config"
	v1 "github.com/shenikar/travel_safety_system/internal/handler/http/v1"
	"github.com/shenikar/travel_safety_system/internal/observability"
	"github.com/shenikar/travel_safety_system/internal/repository"
	"github.com/shenikar/travel_safety_system/internal/scoring"
	"github.com/shenikar/travel_safety_system/internal/service"
	"github.com/shenikar/travel_safety_system/pkg/logger"
	"github.com/shenikar/travel_safety_system/pkg/postgres"
	redisclient "github.com/shenikar/travel_safety_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/travel_safety_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Travel Safety System API
// @version 1.0
// @description Safety scoring and incident aggregation engine: combines weather, community incident reports and photo hazard analysis into a single safety score.
// @host localhost:8080
// @BasePath /api
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

	clock := clockwork.NewRealClock()

	// Леджер инцидентов: PostgreSQL при наличии DATABASE_URL,
	// иначе in-memory
	var ledger service.IncidentLedger
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		ledger = repository.NewPostgresLedger(dbpool)
	} else {
		log.Warn("DATABASE_URL is not set, using in-memory incident ledger")
		ledger = repository.NewMemoryLedger(clock)
	}

	// Кеш криминальных сигналов: опционален, без Redis сервис
	// пересчитывает сигнал на каждый запрос
	var crimeCache service.CrimeScoreCache
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		crimeCache = repository.NewRedisCrimeCache(redisClient, cfg.Scoring.CrimeCacheTTL)
	} else {
		log.Warn("REDIS_ADDR is not set, crime signal caching is disabled")
	}

	// Внешние коллабораторы
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL, cfg.WeatherTimeout, log)
	visionClient := vision.NewClient(cfg.VisionAPIKey, cfg.VisionAPIURL, cfg.VisionModel, cfg.VisionTimeout, log)

	// Калькуляторы сигналов и агрегатор
	crimeCalc := scoring.NewCrimeScoreCalculator(cfg.Scoring, clock)
	weatherCalc := scoring.NewWeatherScoreCalculator(cfg.Scoring)
	hazards := scoring.NewImageHazardAdapter(cfg.Scoring, log)
	aggregator := scoring.NewSafetyAggregator(cfg.Scoring)

	metrics := observability.NewMetrics()

	// Инициализация сервиса
	safetyService := service.NewSafetyService(
		ledger,
		weatherClient,
		visionClient,
		crimeCache,
		crimeCalc,
		weatherCalc,
		hazards,
		aggregator,
		log,
		cfg,
		metrics,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(safetyService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(v1.RequestIDMiddleware(log))

	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
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
