package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// skuCodePattern matches valid SKU codes: 6-10 uppercase alphanumerics.
var skuCodePattern = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)

// SKUCategory groups SKUs for catalog browsing.
type SKUCategory string

const (
	SKUCategoryProduct      SKUCategory = "product"
	SKUCategoryService      SKUCategory = "service"
	SKUCategorySubscription SKUCategory = "subscription"
)

// Valid reports whether c is a known SKU category.
func (c SKUCategory) Valid() bool {
	switch c {
	case SKUCategoryProduct, SKUCategoryService, SKUCategorySubscription:
		return true
	}

	return false
}

// SKU is a priced, identifiable product or service line.
// Quotes snapshot the price at item-addition time, so mutating a SKU
// never changes existing quotes.
type SKU struct {
	ID            string
	Code          string
	Name          string
	Description   string
	Category      SKUCategory
	Price         decimal.Decimal
	Cost          decimal.Decimal
	StockQuantity int
	IsActive      bool
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidSKUCode reports whether code is a well-formed SKU code.
func ValidSKUCode(code string) bool {
	return skuCodePattern.MatchString(code)
}

// Validate checks the SKU's business invariants.
func (s *SKU) Validate() error {
	if !ValidSKUCode(s.Code) {
		return NewValidationError("code", "must be 6-10 uppercase alphanumeric characters")
	}

	if s.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}

	if !s.Category.Valid() {
		return NewValidationErrorWithValue("category", "unknown category", string(s.Category))
	}

	if s.Price.IsNegative() {
		return NewValidationError("price", "must be non-negative")
	}

	if s.Cost.IsNegative() {
		return NewValidationError("cost", "must be non-negative")
	}

	if s.StockQuantity < 0 {
		return NewValidationError("stockQuantity", "must be non-negative")
	}

	return nil
}
