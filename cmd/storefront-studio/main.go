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

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/health"
	"github.com/aaravmahajanofficial/storefront-studio/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/aaravmahajanofficial/storefront-studio/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Lives until a shutdown signal. The stores detach from its cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Blob store setup
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error opening the blob store", slog.String("backend", cfg.Storage.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing the blob store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Blob store closed")
		}
	}()

	loop := state.NewLoop()

	siteService := service.NewSiteService(ctx, repos.Site)
	cartService := service.NewCartService(ctx, repos.Cart, siteService)
	defer cartService.Close()
	userService := service.NewUserService(ctx, repos.User, cfg.Security)
	searchService := service.NewSearchService(siteService)
	wizardService := service.NewWizardService()
	checkoutService := service.NewCheckoutService(loop, cartService, userService, cfg.Checkout)

	if err := userService.EnsureAdminSeed(cfg.Seed); err != nil {
		slog.Error("❌ Error seeding the admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	siteHandler := handlers.NewSiteHandler(siteService, wizardService)
	productHandler := handlers.NewProductHandler(siteService, searchService)
	cartHandler := handlers.NewCartHandler(siteService, cartService, checkoutService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	userHandler := handlers.NewUserHandler(userService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey), userService)

	healthHandler, err := health.NewHealthHandler(cfg, repos)
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Storage.Backend), slog.Bool("siteLoaded", siteService.HasSite()))

	// store routes run one at a time on the event loop
	serialize := middleware.Serialize(loop)
	store := func(h http.HandlerFunc) http.Handler { return serialize(h) }
	member := func(h http.HandlerFunc) http.Handler { return serialize(authMiddleware.Authenticate(h)) }
	admin := func(h http.HandlerFunc) http.Handler { return serialize(authMiddleware.RequireAdmin(h)) }

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.Handle("GET /api/v1/site", store(siteHandler.GetSite()))
	routerMux.Handle("PUT /api/v1/site", admin(siteHandler.PublishSite()))
	routerMux.Handle("DELETE /api/v1/site", admin(siteHandler.ClearSite()))
	routerMux.Handle("GET /api/v1/site/wizard", admin(siteHandler.GetWizard()))
	routerMux.Handle("POST /api/v1/site/wizard/steps/{step}", admin(siteHandler.ValidateWizardStep()))
	routerMux.Handle("PUT /api/v1/site/products", admin(siteHandler.SaveProducts()))
	routerMux.Handle("GET /api/v1/products", store(productHandler.ListProducts()))
	routerMux.Handle("GET /api/v1/products/{slug}", store(productHandler.GetProduct()))
	routerMux.Handle("GET /api/v1/categories", store(productHandler.ListCategories()))
	routerMux.Handle("PUT /api/v1/categories/active", store(productHandler.SetActiveCategory()))
	routerMux.Handle("DELETE /api/v1/categories/active", store(productHandler.ClearActiveCategory()))
	routerMux.Handle("GET /api/v1/search", store(productHandler.Search()))
	routerMux.Handle("DELETE /api/v1/search", store(productHandler.CloseSearch()))
	routerMux.Handle("POST /api/v1/search/open", store(productHandler.OpenSearch()))
	routerMux.Handle("DELETE /api/v1/search/query", store(productHandler.ClearSearch()))
	routerMux.Handle("GET /api/v1/cart", store(cartHandler.GetCart()))
	routerMux.Handle("POST /api/v1/cart/items", store(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items", store(cartHandler.UpdateQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items", store(cartHandler.RemoveItem()))
	routerMux.Handle("DELETE /api/v1/cart", store(cartHandler.ClearCart()))
	routerMux.Handle("GET /api/v1/favorites", store(cartHandler.GetFavorites()))
	routerMux.Handle("POST /api/v1/favorites/{slug}/toggle", store(cartHandler.ToggleFavorite()))
	routerMux.Handle("DELETE /api/v1/favorites/{slug}", store(cartHandler.RemoveFavorite()))
	routerMux.Handle("POST /api/v1/favorites/{slug}/cart", store(cartHandler.MoveFavoriteToCart()))
	routerMux.Handle("POST /api/v1/checkout", checkoutHandler.Checkout())
	routerMux.Handle("POST /api/v1/users/signup", store(userHandler.Signup()))
	routerMux.Handle("POST /api/v1/users/login", store(userHandler.Login()))
	routerMux.Handle("POST /api/v1/users/logout", member(userHandler.Logout()))
	routerMux.Handle("GET /api/v1/users/profile", member(userHandler.Profile()))
	routerMux.Handle("PUT /api/v1/users/profile", member(userHandler.UpdateProfile()))
	routerMux.Handle("GET /api/v1/users/orders", member(userHandler.Orders()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
