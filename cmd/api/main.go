package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pet-adoption-service/internal/api/http"
	"github.com/spec-kit/pet-adoption-service/internal/api/http/handlers"
	"github.com/spec-kit/pet-adoption-service/internal/auth"
	"github.com/spec-kit/pet-adoption-service/internal/config"
	"github.com/spec-kit/pet-adoption-service/internal/events"
	"github.com/spec-kit/pet-adoption-service/internal/observability"
	"github.com/spec-kit/pet-adoption-service/internal/persistence"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	"github.com/spec-kit/pet-adoption-service/internal/service"
	"github.com/spec-kit/pet-adoption-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	petRepo := repository.NewPetRepository(pool)
	adoptionRepo := repository.NewAdoptionRepository(pool)
	packageRepo := repository.NewDaycarePackageRepository(pool)
	bookingRepo := repository.NewDaycareBookingRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	otpStore := auth.NewOTPStore(redis.Client, cfg.Auth.OTPTTL())

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		OTPStore:   otpStore,
		Dispatcher: dispatcher,
	})
	catalogService := service.NewCatalogService(petRepo, foodRepo)
	adoptionService := service.NewAdoptionService(service.AdoptionDependencies{
		AdoptionRepo: adoptionRepo,
		PetRepo:      petRepo,
		Dispatcher:   dispatcher,
	})
	daycareService := service.NewDaycareService(cfg.Daycare, service.DaycareDependencies{
		PackageRepo: packageRepo,
		BookingRepo: bookingRepo,
		Dispatcher:  dispatcher,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:  orderRepo,
		FoodRepo:   foodRepo,
		Dispatcher: dispatcher,
	})
	adminService := service.NewAdminService(userRepo, petRepo, adoptionRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Pets:           handlers.NewPetsHandler(catalogService),
		Adoption:       handlers.NewAdoptionHandler(adoptionService),
		Daycare:        handlers.NewDaycareHandler(daycareService),
		Food:           handlers.NewFoodHandler(catalogService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Admin:          handlers.NewAdminHandler(adminService),
		AuthMiddleware: authMiddleware,
	})

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
