package context

import (
	"context"
	"sync"
)

type ctxKey struct{}

// RequestContext carries per-request memoization and staged writes.
// One is attached per HTTP request by the RequestScope middleware; the
// application layer pulls it back out with FromContext.
type RequestContext struct {
	ctx   context.Context
	cache sync.Map

	mu        sync.Mutex
	actions   []Action
	committed bool
}

// New wraps ctx in a fresh RequestContext.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{ctx: ctx}
}

// FromContext returns the attached RequestContext, or nil. Callers must
// tolerate nil so service methods also work outside an HTTP request.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok {
		return rc
	}
	return nil
}

// WithContext attaches rc to ctx.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// GetOrFetch returns the cached value for key, running fetchFn on the
// first call. Errors are not cached, so a failed fetch is retried on
// the next call. Safe for concurrent use.
func (rc *RequestContext) GetOrFetch(key string, fetchFn func(ctx context.Context) (any, error)) (any, error) {
	if cached, ok := rc.cache.Load(key); ok {
		return cached, nil
	}

	value, err := fetchFn(rc.ctx)
	if err != nil {
		return nil, err
	}

	// LoadOrStore resolves the race when two goroutines fetch the same key.
	actual, _ := rc.cache.LoadOrStore(key, value)
	return actual, nil
}

// Context returns the wrapped context.
func (rc *RequestContext) Context() context.Context {
	return rc.ctx
}
