package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	httptransport "github.com/mbraun22/privatechef/internal/api/http"
	"github.com/mbraun22/privatechef/internal/api/http/handlers"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/config"
	"github.com/mbraun22/privatechef/internal/events"
	"github.com/mbraun22/privatechef/internal/observability"
	"github.com/mbraun22/privatechef/internal/persistence"
	"github.com/mbraun22/privatechef/internal/repository"
	"github.com/mbraun22/privatechef/internal/service"
	"github.com/mbraun22/privatechef/internal/session"
	"github.com/mbraun22/privatechef/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	chefRepo := repository.NewChefRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	menuItemRepo := repository.NewMenuItemRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	sessionStore := session.NewStore(redis.Client, cfg.Auth.SessionTTL())
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, sessionStore)
	chefService := service.NewChefService(chefRepo, menuItemRepo)
	menuService := service.NewMenuService(chefRepo, menuRepo, menuItemRepo)
	bookingService := service.NewBookingService(chefRepo, bookingRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		Views:   engine,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Chefs:          handlers.NewChefsHandler(chefService),
		Menus:          handlers.NewMenusHandler(menuService),
		MenuItems:      handlers.NewMenuItemsHandler(menuService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Web:            handlers.NewWebHandler(authService, chefService, menuService, bookingService, logger),
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
