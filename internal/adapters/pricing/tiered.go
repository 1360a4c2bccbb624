// Package pricing implements discount policies for the quote engine.
package pricing

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/config"
)

// Tier is one volume discount step: subtotals at or above Threshold
// earn Rate of the subtotal as a discount.
type Tier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// TieredPolicy applies the highest tier whose threshold the subtotal
// reaches. With no tiers configured the discount is always zero.
type TieredPolicy struct {
	tiers []Tier
}

// NewTieredPolicy creates a policy from configured tiers, ordered by
// threshold descending so evaluation picks the best match first.
func NewTieredPolicy(cfgTiers []config.DiscountTierConfig) *TieredPolicy {
	tiers := make([]Tier, len(cfgTiers))
	for i, t := range cfgTiers {
		tiers[i] = Tier{
			Threshold: decimal.NewFromFloat(t.Threshold),
			Rate:      decimal.NewFromFloat(t.Rate),
		}
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Threshold.GreaterThan(tiers[j].Threshold)
	})

	return &TieredPolicy{tiers: tiers}
}

// Apply implements ports.DiscountPolicy.
func (p *TieredPolicy) Apply(_ context.Context, subtotal decimal.Decimal, _ string) (decimal.Decimal, error) {
	for _, tier := range p.tiers {
		if subtotal.GreaterThanOrEqual(tier.Threshold) {
			return subtotal.Mul(tier.Rate).Round(domain.MoneyPlaces), nil
		}
	}

	return decimal.Zero, nil
}
