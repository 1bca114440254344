package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/http"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/http/handlers"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/classifier"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/events"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/observability"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/persistence"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/repository"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := classifier.Load(cfg.Model)
	if err != nil {
		logger.Fatal("failed to load model artifacts", zap.String("dir", cfg.Model.Dir), zap.Error(err))
	}
	logger.Info("model loaded",
		zap.String("fingerprint", model.Fingerprint()),
		zap.Strings("categories", model.Categories()),
	)

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	var cache repository.PredictionCache
	if redis.Enabled() {
		cache = repository.NewRedisPredictionCache(redis.Client, model.Fingerprint(), cfg.Redis.CacheTTL())
	}

	var auditService *service.AuditService
	if pg.Enabled() {
		auditService = service.NewAuditService(dispatcher, repository.NewClassificationRepository(pg.PoolHandle()))
	}
	worker.StartAuditWorker(auditService)
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))

	classificationService := service.NewClassificationService(service.ClassificationDependencies{
		Model:      model,
		Cache:      cache,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	authService := service.NewAuthService(cfg.Auth)
	if authService.Enabled() {
		logger.Info("client authentication enabled", zap.Int("clients", len(cfg.Auth.Clients)))
	}
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	routes := httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, true, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Classify:       handlers.NewClassifyHandler(classificationService),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: authMiddleware,
	}
	if auditService != nil {
		routes.Classifications = handlers.NewClassificationsHandler(auditService)
	}
	httptransport.RegisterRoutes(app, routes)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
