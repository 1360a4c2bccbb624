package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/adapters/http/handlers"
	"github.com/salesdesk/quote-service/internal/adapters/pricing"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/config"
	"github.com/salesdesk/quote-service/internal/ports"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// benchEndpoint drives a gin handler directly with a fresh recorder per
// iteration, keeping router dispatch out of the measurement.
func benchEndpoint(b *testing.B, path string, handle func(*gin.Context)) {
	b.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		handle(c)
	}
}

func healthHandler(checkers ...ports.HealthChecker) *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	for _, checker := range checkers {
		if err := registry.Register(checker); err != nil {
			panic(err)
		}
	}

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")

	return handlers.NewHealthHandler(registry, buildInfo)
}

// Liveness is hit by the orchestrator every few seconds and must stay
// allocation-light.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := healthHandler()
	benchEndpoint(b, "/-/live", handler.Liveness)
}

func BenchmarkReadinessHandler(b *testing.B) {
	handler := healthHandler()
	benchEndpoint(b, "/-/ready", handler.Readiness)
}

// BenchmarkReadinessHandler_WithChecks includes the concurrent fan-out
// across registered checkers.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	handler := healthHandler(
		&noopChecker{name: "database"},
		&noopChecker{name: "ai-model"},
	)
	benchEndpoint(b, "/-/ready", handler.Readiness)
}

func BenchmarkBuildInfoHandler(b *testing.B) {
	handler := healthHandler()
	benchEndpoint(b, "/-/build", handler.BuildInfoHandler)
}

// BenchmarkMiddlewareChain measures routing plus recovery overhead as a
// baseline for the per-request cost before any handler work.
func BenchmarkMiddlewareChain(b *testing.B) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// benchmarkQuote builds a quote with n line items for calculation benchmarks.
func benchmarkQuote(n int) *domain.Quote {
	quote := &domain.Quote{
		ID:     "bench-quote",
		UserID: "bench-user",
		Status: domain.QuoteStatusDraft,
	}
	for i := 0; i < n; i++ {
		price := decimal.NewFromFloat(float64(i%50) + 0.99)
		quote.Items = append(quote.Items, domain.NewQuoteItem(fmt.Sprintf("SKU%04d", i), i%5+1, price))
	}
	return quote
}

// BenchmarkQuoteRecalculate measures total recomputation across item counts.
// This runs on every quote mutation, so it should stay cheap even for
// large quotes.
func BenchmarkQuoteRecalculate(b *testing.B) {
	taxRate := decimal.NewFromFloat(0.1)

	for _, size := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("items_%d", size), func(b *testing.B) {
			quote := benchmarkQuote(size)

			b.ResetTimer()
			b.ReportAllocs()

			for range b.N {
				quote.Recalculate(taxRate)
			}
		})
	}
}

// BenchmarkTieredDiscountApply measures tier lookup for a configured policy.
func BenchmarkTieredDiscountApply(b *testing.B) {
	policy := pricing.NewTieredPolicy([]config.DiscountTierConfig{
		{Threshold: 500, Rate: 0.05},
		{Threshold: 1000, Rate: 0.10},
		{Threshold: 5000, Rate: 0.15},
	})
	subtotal := decimal.NewFromFloat(1234.56)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = policy.Apply(context.Background(), subtotal, "USD")
	}
}

type noopChecker struct {
	name string
}

func (s *noopChecker) Name() string { return s.name }

func (s *noopChecker) Check(_ context.Context) error { return nil }
