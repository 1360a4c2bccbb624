package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/ports"
)

func testSKU(code, name, category, price string) *domain.SKU {
	now := testTime()

	return &domain.SKU{
		ID:            uuid.NewString(),
		Code:          code,
		Name:          name,
		Category:      domain.SKUCategory(category),
		Price:         money(price),
		Cost:          money("1.00"),
		StockQuantity: 10,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSKURepository_CreateAndGet(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))
	ctx := context.Background()

	sku := testSKU("WIDGET01", "Widget", "product", "19.99")
	sku.Metadata = map[string]any{"color": "blue"}
	require.NoError(t, repo.Create(ctx, sku))

	byID, err := repo.GetByID(ctx, sku.ID)
	require.NoError(t, err)
	assert.Equal(t, "WIDGET01", byID.Code)
	assert.Equal(t, map[string]any{"color": "blue"}, byID.Metadata)

	byCode, err := repo.GetByCode(ctx, "WIDGET01")
	require.NoError(t, err)
	assert.Equal(t, sku.ID, byCode.ID)
	assert.True(t, byCode.Price.Equal(money("19.99")))
}

func TestSKURepository_Create_DuplicateCode(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSKU("WIDGET01", "Widget", "product", "10.00")))

	err := repo.Create(ctx, testSKU("WIDGET01", "Other widget", "product", "12.00"))
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestSKURepository_Get_NotFound(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))

	_, err = repo.GetByCode(context.Background(), "NOTHERE1")
	assert.True(t, domain.IsNotFound(err))
}

func TestSKURepository_Update(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))
	ctx := context.Background()

	sku := testSKU("WIDGET01", "Widget", "product", "10.00")
	require.NoError(t, repo.Create(ctx, sku))

	sku.Price = money("12.50")
	sku.IsActive = false
	require.NoError(t, repo.Update(ctx, sku))

	got, err := repo.GetByID(ctx, sku.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(money("12.50")))
	assert.False(t, got.IsActive, "is_active false must persist")
}

func TestSKURepository_Update_NotFound(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))

	err := repo.Update(context.Background(), testSKU("GHOST001", "Ghost", "product", "1.00"))
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSKURepository_Delete(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))
	ctx := context.Background()

	sku := testSKU("WIDGET01", "Widget", "product", "10.00")
	require.NoError(t, repo.Create(ctx, sku))
	require.NoError(t, repo.Delete(ctx, sku.ID))

	err := repo.Delete(ctx, sku.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSKURepository_Search(t *testing.T) {
	repo := NewSKURepository(newTestStore(t))
	ctx := context.Background()

	seed := []*domain.SKU{
		testSKU("ALPHA001", "Alpha Widget", "product", "5.00"),
		testSKU("BETA0001", "Beta Widget", "product", "15.00"),
		testSKU("GAMMA001", "Gamma Support", "service", "50.00"),
	}
	inactive := testSKU("DELTA001", "Delta Widget", "product", "25.00")
	inactive.IsActive = false
	seed = append(seed, inactive)

	for _, sku := range seed {
		require.NoError(t, repo.Create(ctx, sku))
	}

	tests := []struct {
		name          string
		filter        ports.SKUFilter
		expectedCodes []string
		expectedTotal int64
	}{
		{
			name:          "no filter returns all ordered by code",
			filter:        ports.SKUFilter{},
			expectedCodes: []string{"ALPHA001", "BETA0001", "DELTA001", "GAMMA001"},
			expectedTotal: 4,
		},
		{
			name:          "by exact code",
			filter:        ports.SKUFilter{Code: "BETA0001"},
			expectedCodes: []string{"BETA0001"},
			expectedTotal: 1,
		},
		{
			name:          "by name substring",
			filter:        ports.SKUFilter{Name: "Widget"},
			expectedCodes: []string{"ALPHA001", "BETA0001", "DELTA001"},
			expectedTotal: 3,
		},
		{
			name:          "by category",
			filter:        ports.SKUFilter{Category: domain.SKUCategoryService},
			expectedCodes: []string{"GAMMA001"},
			expectedTotal: 1,
		},
		{
			name:          "by price range",
			filter:        ports.SKUFilter{MinPrice: money("10.00"), MaxPrice: money("30.00")},
			expectedCodes: []string{"BETA0001", "DELTA001"},
			expectedTotal: 2,
		},
		{
			name:          "active only",
			filter:        ports.SKUFilter{ActiveOnly: true},
			expectedCodes: []string{"ALPHA001", "BETA0001", "GAMMA001"},
			expectedTotal: 3,
		},
		{
			name:          "paged",
			filter:        ports.SKUFilter{Page: 2, Limit: 3},
			expectedCodes: []string{"GAMMA001"},
			expectedTotal: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skus, total, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)

			codes := make([]string, len(skus))
			for i, sku := range skus {
				codes[i] = sku.Code
			}

			assert.Equal(t, tt.expectedCodes, codes)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}
