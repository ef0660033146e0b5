package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sivanaveen080/biryani-for-lunch/api/routes"
	"github.com/sivanaveen080/biryani-for-lunch/internal/admin"
	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	"github.com/sivanaveen080/biryani-for-lunch/internal/catalog"
	checkoutsvc "github.com/sivanaveen080/biryani-for-lunch/internal/checkout"
	"github.com/sivanaveen080/biryani-for-lunch/internal/orderwindow"
	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
	"github.com/sivanaveen080/biryani-for-lunch/internal/whatsapp"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/metrics"
	redispkg "github.com/sivanaveen080/biryani-for-lunch/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	sheetsClient, err := sheets.NewClient(cfg.Sheets)
	if err != nil {
		logg.Error(context.Background(), "failed to build sheets client", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(catalog.Seed(), sheetsClient)
	if err := catalogService.Refresh(context.Background()); err != nil {
		logg.Warn(context.Background(), "menu refresh failed, starting with everything available")
	}

	carts := cart.NewManager(catalogService)

	var redisClient *redispkg.Client
	var allocator checkoutsvc.Allocator
	switch cfg.Orders.Source() {
	case config.OrderIDSourceLocal:
		redisClient, err = redispkg.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		allocator, err = checkoutsvc.NewLocalAllocator(redisClient)
	default:
		allocator, err = checkoutsvc.NewRemoteAllocator(sheetsClient)
	}
	if err != nil {
		logg.Error(context.Background(), "failed to build order id allocator", err)
		os.Exit(1)
	}

	gate, err := orderwindow.FromConfig(cfg.Window)
	if err != nil {
		logg.Error(context.Background(), "failed to build order window gate", err)
		os.Exit(1)
	}

	composer, err := whatsapp.NewComposer(cfg.WhatsApp)
	if err != nil {
		logg.Error(context.Background(), "failed to build whatsapp composer", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Gate:      gate,
		Allocator: allocator,
		Links:     composer,
		Metrics:   metrics.NewCheckoutMetrics(registry),
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(admin.ServiceParams{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		TokenTTL: cfg.Admin.TokenTTL,
		Orders:   sheetsClient,
		Catalog:  catalogService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":       cfg.App.Env,
		"addr":      addr,
		"id_source": string(cfg.Orders.Source()),
	})
	logg.Info(ctx, "starting api server")

	var pinger redispkg.Pinger
	if redisClient != nil {
		pinger = redisClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, pinger, registry, catalogService, carts, checkoutService, adminService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
