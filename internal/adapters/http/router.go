package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salesdesk/quote-service/internal/adapters/http/handlers"
	"github.com/salesdesk/quote-service/internal/adapters/http/middleware"
	"github.com/salesdesk/quote-service/internal/platform/config"
	"github.com/salesdesk/quote-service/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests that carry no explicit timeout.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig wires handlers and cross-cutting settings into the router.
// Nil handlers skip their route group, which keeps partial setups usable
// in tests.
type RouterConfig struct {
	Logger     *slog.Logger
	AuthConfig *config.AuthConfig
	AppConfig  *config.AppConfig

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler
	SKUHandler    *handlers.SKUHandler
	ChatHandler   *handlers.ChatHandler

	// Timeout is applied to /api/v1 routes. Zero disables the deadline.
	Timeout time.Duration
}

// SetupRouter registers middleware and routes on the engine.
//
// Global middleware order: recovery first so panics anywhere below are
// caught, then request/correlation IDs so telemetry and logging can tag
// records, then tracing and metrics, request logging, and the
// per-request scope used for memoization and staged writes.
//
// Health probes live under /-/ and bypass auth and timeouts. Business
// routes live under /api/v1.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
		middleware.RequestScope(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	registerAPIRoutes(apiV1, cfg)
}

// registerAPIRoutes mounts the business endpoints. Every business route
// requires an authenticated subject; catalog mutations additionally
// require the admin role.
func registerAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	protected := rg.Group("")
	protected.Use(middleware.RequireAuth(cfg.AuthConfig))

	admin := rg.Group("")
	admin.Use(middleware.RequireAuth(cfg.AuthConfig))
	admin.Use(middleware.RequireRole(cfg.AuthConfig, "admin"))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(protected)
	}

	if cfg.SKUHandler != nil {
		cfg.SKUHandler.RegisterSKURoutes(protected, admin)
	}

	if cfg.ChatHandler != nil {
		cfg.ChatHandler.RegisterChatRoutes(protected)
	}
}
