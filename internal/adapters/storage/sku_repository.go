package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/ports"
)

// SKURepository implements ports.SKURepository on gorm.
type SKURepository struct {
	db *gorm.DB
}

// NewSKURepository creates a SKU repository backed by the store.
func NewSKURepository(store *Store) *SKURepository {
	return &SKURepository{db: store.DB()}
}

// Create persists a new SKU. The unique index on code turns duplicate
// inserts into a conflict.
func (r *SKURepository) Create(ctx context.Context, sku *domain.SKU) error {
	err := r.db.WithContext(ctx).Create(toSKURecord(sku)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictErrorWithDetails("sku", "code already exists", sku.Code)
		}

		return fmt.Errorf("inserting sku: %w", err)
	}

	return nil
}

// GetByID retrieves a SKU by its identifier.
func (r *SKURepository) GetByID(ctx context.Context, id string) (*domain.SKU, error) {
	var rec skuRecord

	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("sku", id)
		}

		return nil, fmt.Errorf("selecting sku: %w", err)
	}

	return rec.toDomain(), nil
}

// GetByCode resolves a SKU by its unique code.
func (r *SKURepository) GetByCode(ctx context.Context, code string) (*domain.SKU, error) {
	var rec skuRecord

	err := r.db.WithContext(ctx).First(&rec, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("sku", code)
		}

		return nil, fmt.Errorf("selecting sku by code: %w", err)
	}

	return rec.toDomain(), nil
}

// Update overwrites a persisted SKU.
func (r *SKURepository) Update(ctx context.Context, sku *domain.SKU) error {
	res := r.db.WithContext(ctx).
		Model(&skuRecord{}).
		Where("id = ?", sku.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(toSKURecord(sku))
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.NewConflictErrorWithDetails("sku", "code already exists", sku.Code)
		}

		return fmt.Errorf("updating sku: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("sku", sku.ID)
	}

	return nil
}

// Delete removes a SKU.
func (r *SKURepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&skuRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting sku: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("sku", id)
	}

	return nil
}

// Search returns SKUs matching the filter plus the total match count.
func (r *SKURepository) Search(ctx context.Context, filter ports.SKUFilter) ([]*domain.SKU, int64, error) {
	query := r.db.WithContext(ctx).Model(&skuRecord{})

	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}

	if !filter.MinPrice.IsZero() {
		query = query.Where("price >= ?", filter.MinPrice)
	}

	if !filter.MaxPrice.IsZero() {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting skus: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var recs []skuRecord

	err := query.
		Order("code ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("searching skus: %w", err)
	}

	skus := make([]*domain.SKU, len(recs))
	for i := range recs {
		skus[i] = recs[i].toDomain()
	}

	return skus, total, nil
}
