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
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/civic_reporting_system/internal/config"
	v1 "github.com/shenikar/civic_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/civic_reporting_system/internal/push"
	"github.com/shenikar/civic_reporting_system/internal/repository"
	"github.com/shenikar/civic_reporting_system/internal/service"
	"github.com/shenikar/civic_reporting_system/internal/storage"
	"github.com/shenikar/civic_reporting_system/internal/watcher"
	"github.com/shenikar/civic_reporting_system/pkg/logger"
	minioclient "github.com/shenikar/civic_reporting_system/pkg/minio"
	"github.com/shenikar/civic_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/civic_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/civic_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Civic Reporting System API
// @version 1.0
// @description Complaint intake, duplicate detection, office routing and citizen notifications.
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
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

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
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хранилище фотографий необязательно: без него обращения с фото отклоняются
	var blobStorage service.BlobStorage
	if cfg.StorageEnabled() {
		minioClient, err := minioclient.NewMinioClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		blobStorage = storage.NewImageStorage(minioClient, cfg.MinioBucket, cfg.MinioPublicURL)
		log.Info("Successfully connected to MinIO")
	} else {
		log.Warn("Image storage is not configured, complaints with photos will be rejected")
	}

	var pushSender service.PushSender
	if cfg.PushEnabled() {
		pushSender = push.NewExpoSender(cfg, log)
	} else {
		log.Warn("Push provider is not configured, notifications will be stored only")
	}

	// Инициализация репозиториев
	complaintRepo := repository.NewComplaintRepository(dbpool)
	officeRepo := repository.NewOfficeRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)
	complaintCache := repository.NewComplaintCache(redisClient, cfg.ComplaintCacheTTL)
	pushTokens := repository.NewPushTokenStore(redisClient)

	// Инициализация сервисов
	workloadTracker := service.NewWorkloadTracker(officeRepo, log)
	duplicateDetector := service.NewDuplicateDetector(complaintRepo, log)
	routingEngine := service.NewRoutingEngine(officeRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, pushTokens, pushSender, log)
	stateMachine := service.NewComplaintStateMachine(complaintRepo, complaintCache, notificationService, log)
	complaintService := service.NewComplaintService(service.ComplaintDeps{
		Repo:          complaintRepo,
		Cache:         complaintCache,
		Storage:       blobStorage,
		Detector:      duplicateDetector,
		Router:        routingEngine,
		Workload:      workloadTracker,
		Statuses:      stateMachine,
		Notifications: notificationService,
		Logger:        log,
		MaxImageSize:  cfg.MaxImageSizeBytes,
	})

	// Наблюдатель за изменениями обращений
	complaintWatcher := newComplaintWatcher(ctx, cfg, dbpool, complaintRepo, notificationService, log)
	complaintWatcher.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(complaintService, notificationService, complaintWatcher, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.NewCORSMiddleware(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if err := complaintWatcher.Stop(shutdownCtx); err != nil {
		log.Errorf("Complaint watcher did not stop in time: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// newComplaintWatcher выбирает источник событий: change feed с откатом на опрос либо только опрос
func newComplaintWatcher(
	ctx context.Context,
	cfg *config.Config,
	dbpool *pgxpool.Pool,
	complaints service.ComplaintRepository,
	notifications service.NotificationService,
	log *logrus.Logger,
) *watcher.Watcher {
	poller := watcher.NewPoller(complaints, cfg.WatcherPollInterval, log)
	notifier := watcher.NewNotifier(notifications, log)

	if watcher.SelectMode(ctx, cfg.WatcherMode, dbpool, log) == config.WatcherModeChangeFeed {
		feed := watcher.NewChangeFeed(dbpool, complaints, log)
		return watcher.New(feed, poller, notifier, log)
	}
	return watcher.New(poller, nil, notifier, log)
}
