// Package context provides request-scoped context management for
// application services using a two-phase request context pattern.
//
// # Phase 1: Lazy Memoization
//
// Use GetOrFetch to cache expensive lookups within a request:
//
//	rc := context.FromContext(ctx)
//	sku, err := rc.GetOrFetch("sku:WIDGET01", func(ctx context.Context) (any, error) {
//	    return skuRepo.GetByCode(ctx, "WIDGET01")
//	})
//
// Subsequent calls with the same key return the cached value without
// re-fetching. Quote generation uses this so a SKU code repeated across
// line items hits the catalog once.
//
// # Phase 2: Staged Writes
//
// Collect write operations and execute them together:
//
//	rc.AddAction(&PersistQuoteAction{Quote: quote})
//	rc.AddAction(&RecordAuditAction{Event: "quote.sent"})
//
//	if err := rc.Commit(ctx); err != nil {
//	    // Executed actions are rolled back automatically
//	}
//
// # Usage in Application Services
//
//	func (s *Service) SendQuote(ctx context.Context, quoteID string) error {
//	    rc := context.New(ctx)
//	    ctx = context.WithContext(ctx, rc)
//
//	    // Phase 1: Fetch data (memoized)
//	    quote, _ := rc.GetOrFetch("quote:"+quoteID, s.fetchQuote(quoteID))
//
//	    // Phase 2: Stage writes
//	    rc.AddAction(&PersistQuoteAction{Quote: quote})
//
//	    return rc.Commit(ctx)
//	}
package context
