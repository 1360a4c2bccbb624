package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the logger carried by ctx, or the default
// logger. Never returns nil, so call sites can chain directly.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID returns ctx carrying a logger enriched with the
// request ID, so every log line in the request mentions it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("request_id", requestID)))
}

// WithTraceID enriches the context logger with the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("trace_id", traceID)))
}

// WithCorrelationID enriches the context logger with the correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("correlation_id", correlationID)))
}

// SetDefault swaps the fallback logger used when a context carries
// none, and mirrors it into slog's process default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
