package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/shoppingcart/docs/swagger"
	"github.com/ghuser/shoppingcart/pkg/app"
	"github.com/ghuser/shoppingcart/pkg/config"
	"github.com/ghuser/shoppingcart/pkg/events"
	"github.com/ghuser/shoppingcart/pkg/httpx"
	"github.com/ghuser/shoppingcart/pkg/logger"
	"github.com/ghuser/shoppingcart/pkg/telemetry"
	cartApi "github.com/ghuser/shoppingcart/services/cart/application/api"
	cartSvcs "github.com/ghuser/shoppingcart/services/cart/application/services"
	cartEvents "github.com/ghuser/shoppingcart/services/cart/domain/events"
)

// @title					Shopping Cart API
// @version				1.0
// @description			Prices shopping carts and renders fixed-width tickets.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(cfg, log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		"event_bus": eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var routeErr error
	r.Route("/api", func(r chi.Router) {
		routeErr = registerRoutes(r, appConfig)
	})
	if routeErr != nil {
		log.Error("failed to register routes", "error", routeErr)
		os.Exit(1) //nolint:gocritic
	}

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) error {
	return cartApi.CartRoutes(r, a)
}

// registerSubscribers wires all domain event handlers to the in-process bus.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, cartEvents.TopicTicketIssued, cartSvcs.HandleTicketIssued(a.Logger))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", cartEvents.TopicTicketIssued,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{cartEvents.TopicTicketIssued})
	return nil
}
