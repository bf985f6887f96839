package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/moderation-service/internal/api/http"
	"github.com/spec-kit/moderation-service/internal/api/http/handlers"
	"github.com/spec-kit/moderation-service/internal/auth"
	"github.com/spec-kit/moderation-service/internal/cache"
	"github.com/spec-kit/moderation-service/internal/config"
	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/events"
	"github.com/spec-kit/moderation-service/internal/observability"
	"github.com/spec-kit/moderation-service/internal/persistence"
	"github.com/spec-kit/moderation-service/internal/repository"
	"github.com/spec-kit/moderation-service/internal/service"
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

	// Privileged tier: moderation writes and directory search.
	servicePG, err := persistence.NewPostgres(ctx, cfg.Postgres.ServiceDSN, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres (service tier)", zap.Error(err))
	}
	defer servicePG.Close()

	// Restricted tier: session-bound reads such as the order listing.
	clientPG, err := persistence.NewPostgres(ctx, cfg.Postgres.ClientDSN, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres (client tier)", zap.Error(err))
	}
	defer clientPG.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, servicePG.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	profileRepo := repository.NewProfileRepository(servicePG.PoolHandle())
	reportRepo := repository.NewReportRepository(servicePG.PoolHandle())
	orderRepo := repository.NewOrderRepository(clientPG.PoolHandle())
	logRepo := repository.NewModerationLogRepository(servicePG.PoolHandle())

	invalidator := cache.NewInvalidator(cache.NewRedisViewStore(redis.Client), logger, metrics)
	invalidator.Register(domain.EntityProfile, "views:admin:profiles", "views:admin:dashboard")
	invalidator.Register(domain.EntityReport, "views:admin:reports", "views:admin:dashboard")

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(logRepo, dispatcher, logger)
	auditService.RegisterHandlers()

	authService := service.NewAuthService(*cfg, profileRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), profileRepo)

	directoryService := service.NewDirectoryService(profileRepo, logger, metrics)
	moderationService := service.NewModerationService(service.ModerationDependencies{
		ProfileRepo: profileRepo,
		ReportRepo:  reportRepo,
		Invalidator: invalidator,
		Dispatcher:  dispatcher,
		Logger:      logger,
		Metrics:     metrics,
	})
	orderService := service.NewOrderService(orderRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, servicePG, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Profiles:       handlers.NewProfilesHandler(directoryService, moderationService),
		Reports:        handlers.NewReportsHandler(moderationService),
		Orders:         handlers.NewOrdersHandler(orderService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
			logger.Warn("metrics listener stopped", zap.Error(err))
		}
	}()

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
