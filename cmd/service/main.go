// Package main boots the quote service: config, logging, telemetry,
// storage, the AI model client, and the HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
	"github.com/salesdesk/quote-service/internal/adapters/clients/acl"
	"github.com/salesdesk/quote-service/internal/adapters/flags"
	"github.com/salesdesk/quote-service/internal/adapters/http"
	"github.com/salesdesk/quote-service/internal/adapters/http/handlers"
	"github.com/salesdesk/quote-service/internal/adapters/pricing"
	"github.com/salesdesk/quote-service/internal/adapters/storage"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/platform/config"
	"github.com/salesdesk/quote-service/internal/platform/logging"
	"github.com/salesdesk/quote-service/internal/platform/telemetry"
	"github.com/salesdesk/quote-service/internal/ports"
)

// Injected at build time:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, err := storage.Open(storage.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("database close error", slog.Any("error", closeErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	aiHTTPClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.AI.BaseURL,
		ServiceName: cfg.Services.AI.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc: func(req *nethttp.Request) {
			if cfg.Services.AI.APIKey != "" {
				req.Header.Set("Authorization", "Bearer "+cfg.Services.AI.APIKey)
			}
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating AI HTTP client: %w", err)
	}

	aiClient := acl.NewAIModelClient(acl.AIClientConfig{
		Client: aiHTTPClient,
		Model:  cfg.Services.AI.Model,
		Logger: logger,
	})

	if err := healthRegistry.Register(aiClient); err != nil {
		return fmt.Errorf("registering AI model health check: %w", err)
	}

	quoteRepo := storage.NewQuoteRepository(store)
	skuRepo := storage.NewSKURepository(store)
	chatRepo := storage.NewChatRepository(store)
	discountPolicy := pricing.NewTieredPolicy(cfg.Pricing.Discount)
	featureFlags := flags.NewStatic(cfg.Flags.Values)

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:   quoteRepo,
		SKUs:     skuRepo,
		Discount: discountPolicy,
		Flags:    featureFlags,
		Logger:   logger,
		TaxRate:  decimal.NewFromFloat(cfg.Pricing.TaxRate),
		Validity: time.Duration(cfg.Pricing.ValidityDays) * 24 * time.Hour,
	})

	skuService := app.NewSKUService(app.SKUServiceConfig{
		SKUs:   skuRepo,
		Logger: logger,
	})

	chatService := app.NewChatService(app.ChatServiceConfig{
		Sessions: chatRepo,
		AI:       aiClient,
		Logger:   logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	skuHandler := handlers.NewSKUHandler(skuService)
	chatHandler := handlers.NewChatHandler(chatService)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AuthConfig:    &cfg.Auth,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		SKUHandler:    skuHandler,
		ChatHandler:   chatHandler,
		Timeout:       http.DefaultRequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server error, then
// drains in-flight requests within the configured timeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
