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

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/mapstl_api/internal/config"
	"github.com/shenikar/mapstl_api/internal/handler/http/middleware"
	v1 "github.com/shenikar/mapstl_api/internal/handler/http/v1"
	"github.com/shenikar/mapstl_api/internal/repository"
	"github.com/shenikar/mapstl_api/internal/service"
	"github.com/shenikar/mapstl_api/pkg/logger"
	"github.com/shenikar/mapstl_api/pkg/postgres"
	redisclient "github.com/shenikar/mapstl_api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/mapstl_api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MapSTL API
// @version 1.0
// @description Read-only API over St. Louis crime incident data.
// @host localhost:8080
// @BasePath /
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newResultCache подключает Redis, если он настроен. Без Redis сервис работает без кеша.
func newResultCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.Cache, func()) {
	if !cfg.CacheEnabled() {
		log.Info("REDIS_ADDR is empty, result cache disabled")
		return nil, func() {}
	}

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		// Кеш необязателен: API продолжает работать напрямую с бд
		log.WithError(err).Warn("Failed to connect to Redis, result cache disabled")
		return nil, func() {}
	}
	log.Info("Successfully connected to Redis")

	return repository.NewRedisCache(redisClient, cfg.CacheTTL), func() {
		_ = redisClient.Close()
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Миграции только для локальной копии схемы: боевую таблицу ведет внешний ETL
	if cfg.RunMigrations {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	resultCache, closeCache := newResultCache(ctx, cfg, log)
	defer closeCache()

	// Инициализация репозиториев
	crimeRepo := repository.NewCrimeRepository(dbpool, log)

	// Инициализация сервисов
	crimeService := service.NewCrimeService(crimeRepo, resultCache, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(crimeService, log)

	// Настройка Gin роутера
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	if cfg.RateLimitEnabled() {
		router.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	handler.RegisterRoutes(&router.RouterGroup)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
