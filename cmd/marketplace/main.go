package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/vendor-marketplace/docs"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/config"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/health"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/metrics"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/storage/postgres"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/telemetry"
	"github.com/aaravmahajanofficial/vendor-marketplace/pkg/sendgrid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Vendor Marketplace API
//	@version					1.0
//	@description				Multi-vendor marketplace: users, vendors, items, reviews, carts, checkout and orders.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Could not load .env file", slog.String("error", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.Env, cfg.OTel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, repos.DB); err != nil {
			slog.Error("❌ Error running migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	itemCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	ratingService := service.NewRatingService(repos.Item, repos.Review, itemCache)
	userService := service.NewUserService(repos.User, repository.NewRateLimitRepo(redisClient, cfg), ratingService, itemCache,
		[]byte(cfg.Security.JWTKey), cfg.Security.TokenTTL())
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	orderService := service.NewOrderService(service.OrderDeps{
		Orders:        repos.Order,
		Carts:         repos.Cart,
		Items:         repos.Item,
		Addresses:     repos.Address,
		Payments:      repos.Payment,
		Users:         repos.User,
		Locks:         repository.NewLockRepo(redisClient, cfg),
		Notifications: notificationService,
	})

	h := &apiHandlers{
		User:         handlers.NewUserHandler(userService),
		Vendor:       handlers.NewVendorHandler(service.NewVendorService(repos.Vendor, repos.Item, itemCache)),
		Item:         handlers.NewItemHandler(service.NewItemService(repos.Item, repos.Vendor, itemCache, cfg.Cache.DefaultTTL)),
		Review:       handlers.NewReviewHandler(service.NewReviewService(repos.Review, repos.Item, ratingService)),
		Cart:         handlers.NewCartHandler(service.NewCartService(repos.Cart, repos.Item)),
		Order:        handlers.NewOrderHandler(orderService),
		Address:      handlers.NewAddressHandler(service.NewAddressService(repos.Address)),
		Payment:      handlers.NewPaymentHandler(service.NewPaymentService(repos.Payment)),
		Notification: handlers.NewNotificationHandler(notificationService),
	}

	healthChecker, err := health.NewHealthHandler(cfg, redisClient)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.ComponentVersion))

	// Setup router
	routerMux := http.NewServeMux()
	registerRoutes(routerMux, h, middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey)), map[string]http.Handler{
		"GET /health":  healthChecker.Handler(),
		"GET /metrics": metrics.Handler(),
	})

	// Middleware chaining; metrics sits next to the mux so the matched pattern is visible
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.HTTPServer.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
