package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSKU() *SKU {
	return &SKU{
		ID:            "sku-1",
		Code:          "WIDGET01",
		Name:          "Widget",
		Category:      SKUCategoryProduct,
		Price:         decimal.RequireFromString("19.99"),
		Cost:          decimal.RequireFromString("8.50"),
		StockQuantity: 100,
		IsActive:      true,
	}
}

func TestValidSKUCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"WIDGET01", true},
		{"ABC123", true},
		{"A1B2C3D4E5", true},
		{"ABCDE", false},             // too short
		{"ABCDEFGHIJK", false},       // too long
		{"widget01", false},          // lowercase
		{"WIDGET-1", false},          // punctuation
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSKUCode(tt.code))
		})
	}
}

func TestSKUValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SKU)
		wantErr bool
		field   string
	}{
		{
			name:   "valid sku",
			mutate: func(*SKU) {},
		},
		{
			name:    "bad code",
			mutate:  func(s *SKU) { s.Code = "bad" },
			wantErr: true,
			field:   "code",
		},
		{
			name:    "empty name",
			mutate:  func(s *SKU) { s.Name = "" },
			wantErr: true,
			field:   "name",
		},
		{
			name:    "unknown category",
			mutate:  func(s *SKU) { s.Category = "hardware" },
			wantErr: true,
			field:   "category",
		},
		{
			name:    "negative price",
			mutate:  func(s *SKU) { s.Price = decimal.RequireFromString("-1") },
			wantErr: true,
			field:   "price",
		},
		{
			name:    "negative cost",
			mutate:  func(s *SKU) { s.Cost = decimal.RequireFromString("-0.01") },
			wantErr: true,
			field:   "cost",
		},
		{
			name:    "negative stock",
			mutate:  func(s *SKU) { s.StockQuantity = -1 },
			wantErr: true,
			field:   "stockQuantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sku := validSKU()
			tt.mutate(sku)

			err := sku.Validate()

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestSKUCategory_Valid(t *testing.T) {
	assert.True(t, SKUCategoryProduct.Valid())
	assert.True(t, SKUCategoryService.Valid())
	assert.True(t, SKUCategorySubscription.Valid())
	assert.False(t, SKUCategory("hardware").Valid())
	assert.False(t, SKUCategory("").Valid())
}
