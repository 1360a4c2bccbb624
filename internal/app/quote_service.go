package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appctx "github.com/salesdesk/quote-service/internal/app/context"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/logging"
	"github.com/salesdesk/quote-service/internal/ports"
)

// DefaultQuoteValidity is how long a quote remains open when the
// request does not specify an expiry.
const DefaultQuoteValidity = 30 * 24 * time.Hour

// FlagAllowNonDraftEdits restores the legacy behavior of allowing item
// edits on quotes that have already been sent. Off by default; edits to
// non-draft quotes are a conflict. Accepted, Rejected, and Expired
// quotes are never editable regardless of the flag.
const FlagAllowNonDraftEdits = "allow-non-draft-edits"

// QuoteItemRequest is one requested line: a SKU code and a quantity.
// Pricing always comes from the catalog, never from the caller.
type QuoteItemRequest struct {
	SKUCode  string
	Quantity int
}

// NewQuoteRequest carries everything needed to generate a quote.
type NewQuoteRequest struct {
	Items    []QuoteItemRequest
	Notes    string
	Metadata map[string]any

	// ExpiresAt overrides the default validity window when set.
	ExpiresAt *time.Time
}

// QuotePatch is an explicit partial update of whitelisted fields.
// Nil fields are left untouched. ID, owner, creation time, and expiry
// are never patchable.
type QuotePatch struct {
	Items          *[]QuoteItemRequest
	Notes          *string
	Metadata       map[string]any
	DiscountAmount *decimal.Decimal
}

// QuoteService is the quote engine: it owns quote creation, item
// pricing, total computation, status transitions, and ownership
// checks. It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	quotes   ports.QuoteRepository
	skus     ports.SKURepository
	discount ports.DiscountPolicy
	flags    ports.FeatureFlags
	logger   *slog.Logger
	taxRate  decimal.Decimal
	validity time.Duration
	now      func() time.Time
}

// QuoteServiceConfig contains the quote engine's dependencies.
type QuoteServiceConfig struct {
	Quotes   ports.QuoteRepository
	SKUs     ports.SKURepository
	Discount ports.DiscountPolicy
	Flags    ports.FeatureFlags
	Logger   *slog.Logger

	// TaxRate is the single configured rate applied uniformly to the
	// discounted subtotal, e.g. 0.10.
	TaxRate decimal.Decimal

	// Validity is the default quote lifetime. Zero means DefaultQuoteValidity.
	Validity time.Duration

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewQuoteService creates the quote engine with the provided dependencies.
// Panics if a required repository or policy is missing.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil {
		panic("QuoteService: Quotes repository is required")
	}

	if cfg.SKUs == nil {
		panic("QuoteService: SKUs repository is required")
	}

	if cfg.Discount == nil {
		panic("QuoteService: Discount policy is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	validity := cfg.Validity
	if validity <= 0 {
		validity = DefaultQuoteValidity
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteService{
		quotes:   cfg.Quotes,
		skus:     cfg.SKUs,
		discount: cfg.Discount,
		flags:    cfg.Flags,
		logger:   logger.With(slog.String("component", "app.QuoteService")),
		taxRate:  cfg.TaxRate,
		validity: validity,
		now:      now,
	}
}

// Generate prices the requested items against the catalog, applies the
// discount policy and tax, and persists a new Draft quote. Nothing is
// persisted if any item fails to resolve.
func (s *QuoteService) Generate(ctx context.Context, req NewQuoteRequest, ownerID string) (*domain.Quote, error) {
	logger := s.log(ctx).With(slog.String("method", "Generate"), slog.String("user_id", ownerID))

	if err := validateItemRequests(req.Items); err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()

	expiresAt := now.Add(s.validity)
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	quote := &domain.Quote{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Status:    domain.QuoteStatusDraft,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
		Notes:     req.Notes,
		Metadata:  req.Metadata,
	}

	if err := s.applyDiscountAndTotals(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", quote.ID),
		slog.Int("items", len(quote.Items)),
		slog.String("total", quote.TotalAmount.StringFixed(domain.MoneyPlaces)),
	)

	return quote, nil
}

// Get retrieves a quote for its owner, applying lazy expiration.
func (s *QuoteService) Get(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error) {
	quote, err := s.ownedQuote(ctx, quoteID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.expireIfDue(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// Update applies an explicit patch to a Draft quote and recomputes
// totals. Updating a Sent quote is a conflict unless the
// allow-non-draft-edits flag is on; terminal statuses are never
// editable.
func (s *QuoteService) Update(ctx context.Context, quoteID string, patch QuotePatch, requesterID string) (*domain.Quote, error) {
	logger := s.log(ctx).With(slog.String("method", "Update"), slog.String("quote_id", quoteID))

	quote, err := s.ownedQuote(ctx, quoteID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.expireIfDue(ctx, quote); err != nil {
		return nil, err
	}

	// The flag only unlocks Sent quotes. Accepted, Rejected, and
	// Expired stay immutable.
	if !quote.Editable() &&
		(quote.Status != domain.QuoteStatusSent || !s.flagEnabled(ctx, FlagAllowNonDraftEdits)) {
		return nil, domain.NewConflictErrorWithDetails("quote", "only draft quotes can be updated", string(quote.Status))
	}

	if patch.Items != nil {
		if err := validateItemRequests(*patch.Items); err != nil {
			return nil, err
		}

		items, err := s.priceItems(ctx, *patch.Items)
		if err != nil {
			return nil, err
		}

		quote.Items = items
	}

	if patch.Notes != nil {
		quote.Notes = *patch.Notes
	}

	if patch.Metadata != nil {
		quote.Metadata = patch.Metadata
	}

	// A discount override wins; otherwise a replaced item list re-runs
	// the discount policy against the new subtotal.
	switch {
	case patch.DiscountAmount != nil:
		if patch.DiscountAmount.IsNegative() {
			return nil, domain.NewValidationError("discountAmount", "must be non-negative")
		}

		quote.DiscountAmount = *patch.DiscountAmount
		quote.Recalculate(s.taxRate)
	case patch.Items != nil:
		if err := s.applyDiscountAndTotals(ctx, quote); err != nil {
			return nil, err
		}
	default:
		quote.Recalculate(s.taxRate)
	}

	quote.UpdatedAt = s.now()

	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, fmt.Errorf("updating quote: %w", err)
	}

	logger.InfoContext(ctx, "quote updated",
		slog.String("total", quote.TotalAmount.StringFixed(domain.MoneyPlaces)),
	)

	return quote, nil
}

// Delete removes a quote owned by the requester. Hard delete.
func (s *QuoteService) Delete(ctx context.Context, quoteID, requesterID string) error {
	logger := s.log(ctx).With(slog.String("method", "Delete"), slog.String("quote_id", quoteID))

	if _, err := s.ownedQuote(ctx, quoteID, requesterID); err != nil {
		return err
	}

	if err := s.quotes.Delete(ctx, quoteID); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	logger.InfoContext(ctx, "quote deleted")

	return nil
}

// List returns one page of the requester's quotes, newest first, plus
// the requester's total quote count. Page and limit are 1-indexed.
func (s *QuoteService) List(ctx context.Context, requesterID string, page, limit int) (*ports.QuotePage, error) {
	if page < 1 {
		return nil, domain.NewValidationErrorWithValue("page", "must be a positive integer", page)
	}

	if limit < 1 {
		return nil, domain.NewValidationErrorWithValue("limit", "must be a positive integer", limit)
	}

	quotes, total, err := Parallel2(ctx,
		func(ctx context.Context) ([]*domain.Quote, error) {
			return s.quotes.ListByUser(ctx, requesterID, page, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.quotes.CountByUser(ctx, requesterID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	// Lazy expiration applies to listing the same as to Get, so a page
	// never shows a stale status for a quote past its expiry.
	for _, quote := range quotes {
		if err := s.expireIfDue(ctx, quote); err != nil {
			return nil, err
		}
	}

	return &ports.QuotePage{Quotes: quotes, Total: total}, nil
}

// Send transitions a Draft quote to Sent.
func (s *QuoteService) Send(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error) {
	return s.transition(ctx, quoteID, requesterID, domain.QuoteStatusSent)
}

// Accept transitions a Sent quote to Accepted.
func (s *QuoteService) Accept(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error) {
	return s.transition(ctx, quoteID, requesterID, domain.QuoteStatusAccepted)
}

// Reject transitions a Sent quote to Rejected.
func (s *QuoteService) Reject(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error) {
	return s.transition(ctx, quoteID, requesterID, domain.QuoteStatusRejected)
}

func (s *QuoteService) transition(ctx context.Context, quoteID, requesterID string, next domain.QuoteStatus) (*domain.Quote, error) {
	logger := s.log(ctx).With(slog.String("method", "transition"), slog.String("quote_id", quoteID))

	quote, err := s.ownedQuote(ctx, quoteID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.expireIfDue(ctx, quote); err != nil {
		return nil, err
	}

	if err := quote.Transition(next); err != nil {
		return nil, err
	}

	quote.UpdatedAt = s.now()

	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, fmt.Errorf("persisting transition: %w", err)
	}

	logger.InfoContext(ctx, "quote status changed", slog.String("status", string(next)))

	return quote, nil
}

// ownedQuote loads a quote and enforces ownership: NotFound if absent,
// Forbidden if owned by someone else.
func (s *QuoteService) ownedQuote(ctx context.Context, quoteID, requesterID string) (*domain.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if !quote.OwnedBy(requesterID) {
		return nil, domain.NewForbiddenError("quote access", "quote belongs to another user")
	}

	return quote, nil
}

// expireIfDue applies lazy expiration: a quote read past its expiry
// time is marked Expired and persisted before being returned.
func (s *QuoteService) expireIfDue(ctx context.Context, quote *domain.Quote) error {
	if quote.Status == domain.QuoteStatusExpired || !quote.Expired(s.now()) {
		return nil
	}

	if err := quote.Transition(domain.QuoteStatusExpired); err != nil {
		return err
	}

	quote.UpdatedAt = s.now()

	if err := s.quotes.Update(ctx, quote); err != nil {
		return fmt.Errorf("persisting expiration: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quote expired", slog.String("quote_id", quote.ID))

	return nil
}

// priceItems resolves each requested SKU and snapshots its price.
// Any code that does not resolve to an active SKU aborts the whole call.
func (s *QuoteService) priceItems(ctx context.Context, reqs []QuoteItemRequest) ([]domain.QuoteItem, error) {
	items := make([]domain.QuoteItem, 0, len(reqs))

	for _, req := range reqs {
		sku, err := s.resolveSKU(ctx, req.SKUCode)
		if err != nil {
			return nil, fmt.Errorf("resolving sku %q: %w", req.SKUCode, err)
		}

		if !sku.IsActive {
			return nil, domain.NewNotFoundError("active sku", req.SKUCode)
		}

		items = append(items, domain.NewQuoteItem(sku.Code, req.Quantity, sku.Price))
	}

	return items, nil
}

// resolveSKU looks up a SKU by code, memoizing within the request so a
// code repeated across lines hits the catalog once.
func (s *QuoteService) resolveSKU(ctx context.Context, code string) (*domain.SKU, error) {
	rc := appctx.FromContext(ctx)
	if rc == nil {
		return s.skus.GetByCode(ctx, code)
	}

	value, err := rc.GetOrFetch("sku:"+code, func(ctx context.Context) (any, error) {
		return s.skus.GetByCode(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	sku, ok := value.(*domain.SKU)
	if !ok {
		return s.skus.GetByCode(ctx, code)
	}

	return sku, nil
}

// applyDiscountAndTotals runs the discount policy against the quote's
// item subtotal and recomputes all totals.
func (s *QuoteService) applyDiscountAndTotals(ctx context.Context, quote *domain.Quote) error {
	subtotal := decimal.Zero
	for _, item := range quote.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	discount, err := s.discount.Apply(ctx, subtotal, quote.UserID)
	if err != nil {
		return fmt.Errorf("applying discount policy: %w", err)
	}

	quote.DiscountAmount = discount
	quote.Recalculate(s.taxRate)

	return nil
}

func (s *QuoteService) flagEnabled(ctx context.Context, flag string) bool {
	return s.flags != nil && s.flags.IsEnabled(ctx, flag, false)
}

func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}

	return s.logger
}

// validateItemRequests rejects empty item lists, blank codes, and
// non-positive quantities before any SKU resolution happens.
func validateItemRequests(reqs []QuoteItemRequest) error {
	if len(reqs) == 0 {
		return domain.NewValidationError("items", "cannot be empty")
	}

	for _, req := range reqs {
		if req.SKUCode == "" {
			return domain.NewValidationError("items.skuCode", "cannot be empty")
		}

		if req.Quantity <= 0 {
			return domain.NewValidationErrorWithValue("items.quantity", "must be positive", req.Quantity)
		}
	}

	return nil
}
