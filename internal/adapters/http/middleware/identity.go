// Package middleware holds the Gin middleware chain for the quote API:
// request identity, auth claims, request-scoped caching, logging,
// recovery, and timeouts.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salesdesk/quote-service/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID identifies a business transaction spanning
	// several services, for example one chat turn that touches quotes,
	// the catalog, and the AI model.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// ctxKey keeps context.Context values collision-free.
type ctxKey string

const (
	ctxKeyRequestID     ctxKey = "request_id"
	ctxKeyCorrelationID ctxKey = "correlation_id"
)

// RequestID accepts an inbound X-Request-ID or mints a UUID, then
// exposes it through the gin context, the response headers, the
// request context, and the context logger.
func RequestID() gin.HandlerFunc {
	return propagateID(HeaderRequestID, ContextKeyRequestID, func(ctx context.Context, id string) context.Context {
		return logging.WithRequestID(context.WithValue(ctx, ctxKeyRequestID, id), id)
	})
}

// CorrelationID does the same for X-Correlation-ID. A missing header
// means this service is the transaction origin and mints the ID.
func CorrelationID() gin.HandlerFunc {
	return propagateID(HeaderCorrelationID, ContextKeyCorrelationID, func(ctx context.Context, id string) context.Context {
		return logging.WithCorrelationID(context.WithValue(ctx, ctxKeyCorrelationID, id), id)
	})
}

// propagateID reads or generates the ID, then threads it through gin
// state, response headers, and the request context.
func propagateID(header, ginKey string, enrich func(ctx context.Context, id string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ginKey, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID reads the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return stringFromGin(c, ContextKeyRequestID)
}

// MustGetRequestID reads the request ID, falling back to "unknown"
// when the middleware did not run.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}
	return "unknown"
}

// GetCorrelationID reads the correlation ID from the gin context.
func GetCorrelationID(c *gin.Context) string {
	return stringFromGin(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID reads the correlation ID, falling back to
// "unknown" when the middleware did not run.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}
	return "unknown"
}

// RequestIDFromContext reads the request ID off a context.Context for
// propagation to downstream services.
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext reads the correlation ID off a
// context.Context for propagation to downstream services.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request ID directly on a context,
// mainly for callers outside the HTTP path such as tests and jobs.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID directly on a context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

func stringFromGin(c *gin.Context, key string) string {
	if v, exists := c.Get(key); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func stringFromContext(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}
	if s, ok := ctx.Value(key).(string); ok {
		return s
	}
	return ""
}
