// Package domain contains core business entities and rules.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places for all monetary amounts.
const MoneyPlaces = 2

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

// Quote lifecycle states. Transitions are one-directional:
// Draft -> Sent -> {Accepted, Rejected}, and any non-terminal state
// -> Expired once the quote passes its expiry time.
const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Valid reports whether s is a known quote status.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}

	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
// Expiration is allowed from any other state.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if next == QuoteStatusExpired {
		return s != QuoteStatusExpired
	}

	switch s {
	case QuoteStatusDraft:
		return next == QuoteStatusSent
	case QuoteStatusSent:
		return next == QuoteStatusAccepted || next == QuoteStatusRejected
	default:
		return false
	}
}

// QuoteItem is a single priced line on a quote.
// UnitPrice is snapshotted from the SKU at the time the item is added;
// later SKU price changes never alter existing quote items.
type QuoteItem struct {
	// SKUCode references the SKU this line was priced from.
	SKUCode string

	// Quantity is the number of units, always positive.
	Quantity int

	// UnitPrice is the per-unit price captured at addition time.
	UnitPrice decimal.Decimal

	// LineTotal is Quantity * UnitPrice, derived and never set independently.
	LineTotal decimal.Decimal
}

// Quote is a priced proposal composed of SKU line items, owned by a user.
type Quote struct {
	// ID is the unique identifier, generated at creation, immutable.
	ID string

	// UserID is the owning user, set at creation, immutable.
	UserID string

	// Status is the current lifecycle state.
	Status QuoteStatus

	// Items are the priced lines in display order.
	Items []QuoteItem

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// ExpiresAt is fixed at creation; quotes past it become Expired lazily on read.
	ExpiresAt time.Time

	Notes    string
	Metadata map[string]any
}

// NewQuoteItem prices a line from a snapshot unit price.
func NewQuoteItem(skuCode string, quantity int, unitPrice decimal.Decimal) QuoteItem {
	return QuoteItem{
		SKUCode:   skuCode,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Recalculate recomputes subtotal, tax, and total from the quote's items and
// discount. The discount is clamped to [0, subtotal]. The tax rate is applied
// uniformly to the discounted subtotal. All amounts are rounded to two
// decimal places, half up. After Recalculate,
// TotalAmount == Subtotal - DiscountAmount + TaxAmount always holds.
func (q *Quote) Recalculate(taxRate decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range q.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	subtotal = subtotal.Round(MoneyPlaces)

	discount := q.DiscountAmount
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	discount = discount.Round(MoneyPlaces)

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(taxRate).Round(MoneyPlaces)

	q.Subtotal = subtotal
	q.DiscountAmount = discount
	q.TaxAmount = tax
	q.TotalAmount = taxable.Add(tax).Round(MoneyPlaces)
}

// Expired reports whether the quote is past its expiry time at now.
func (q *Quote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && now.After(q.ExpiresAt)
}

// OwnedBy reports whether the quote belongs to the given user.
func (q *Quote) OwnedBy(userID string) bool {
	return q.UserID == userID
}

// Editable reports whether the quote's line items may still be changed.
func (q *Quote) Editable() bool {
	return q.Status == QuoteStatusDraft
}

// Transition moves the quote to the next status, enforcing the state machine.
// Returns a conflict error for any transition the machine does not permit.
func (q *Quote) Transition(next QuoteStatus) error {
	if !q.Status.CanTransitionTo(next) {
		return NewConflictErrorWithDetails(
			"quote",
			"invalid status transition",
			string(q.Status)+" -> "+string(next),
		)
	}

	q.Status = next

	return nil
}
