// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/domain"
)

// QuotePage is one page of a user's quotes plus the unfiltered count
// for that user.
type QuotePage struct {
	Quotes []*domain.Quote
	Total  int64
}

// QuoteRepository persists quotes and their line items.
type QuoteRepository interface {
	// Create persists a new quote. Returns domain.ErrConflict if the ID
	// already exists.
	Create(ctx context.Context, quote *domain.Quote) error

	// GetByID retrieves a quote with its items in display order.
	// Returns domain.ErrNotFound if the quote does not exist.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// Update overwrites a persisted quote, replacing its item list.
	// Returns domain.ErrNotFound if the quote does not exist.
	Update(ctx context.Context, quote *domain.Quote) error

	// Delete removes a quote and its items.
	// Returns domain.ErrNotFound if the quote does not exist.
	Delete(ctx context.Context, id string) error

	// ListByUser returns one page of the user's quotes ordered by
	// creation time descending. Page and limit are 1-indexed positive
	// integers.
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Quote, error)

	// CountByUser returns the total number of quotes owned by the user.
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// SKURepository persists the product catalog and doubles as the quote
// engine's SKU lookup collaborator.
type SKURepository interface {
	// Create persists a new SKU. Returns domain.ErrConflict if a SKU
	// with the same code already exists.
	Create(ctx context.Context, sku *domain.SKU) error

	// GetByID retrieves a SKU by its identifier.
	// Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.SKU, error)

	// GetByCode resolves a SKU by its unique code.
	// Returns domain.ErrNotFound if absent.
	GetByCode(ctx context.Context, code string) (*domain.SKU, error)

	// Update overwrites a persisted SKU.
	// Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, sku *domain.SKU) error

	// Delete removes a SKU. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Search returns SKUs matching the filter plus the total match count.
	Search(ctx context.Context, filter SKUFilter) ([]*domain.SKU, int64, error)
}

// SKUFilter narrows a catalog search. Zero values mean "no constraint".
type SKUFilter struct {
	Code       string
	Name       string
	Category   domain.SKUCategory
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	ActiveOnly bool
	Page       int
	Limit      int
}

// ChatRepository persists chat sessions and their messages.
type ChatRepository interface {
	// CreateSession persists a new chat session.
	CreateSession(ctx context.Context, session *domain.ChatSession) error

	// GetSession retrieves a session with its messages in send order.
	// Returns domain.ErrNotFound if absent.
	GetSession(ctx context.Context, id string) (*domain.ChatSession, error)

	// UpdateSession overwrites session fields (status, end time, context).
	// Returns domain.ErrNotFound if absent.
	UpdateSession(ctx context.Context, session *domain.ChatSession) error

	// ListSessionsByUser returns the user's sessions, newest first.
	ListSessionsByUser(ctx context.Context, userID string) ([]*domain.ChatSession, error)

	// AppendMessage adds a message to a session.
	AppendMessage(ctx context.Context, message *domain.ChatMessage) error
}

// DiscountPolicy decides the discount for a quote before tax.
// Implementations must return an amount in [0, subtotal]; the engine
// clamps the result to that range regardless.
type DiscountPolicy interface {
	Apply(ctx context.Context, subtotal decimal.Decimal, ownerID string) (decimal.Decimal, error)
}

// AIClient generates assistant replies for chat sessions.
// Adapters translate the external model API to this contract.
type AIClient interface {
	// Complete produces the assistant's reply to a user message given
	// prior conversation history. Returns domain.ErrUnavailable if the
	// model service is unreachable.
	Complete(ctx context.Context, history []domain.ChatMessage, message string) (string, error)
}
