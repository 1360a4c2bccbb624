package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salesdesk/quote-service/internal/domain"
)

// QuoteRepository implements ports.QuoteRepository on gorm.
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a quote repository backed by the store.
func NewQuoteRepository(store *Store) *QuoteRepository {
	return &QuoteRepository{db: store.DB()}
}

// Create persists a quote and its items in one transaction.
func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	rec := toQuoteRecord(quote)

	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictErrorWithDetails("quote", "id already exists", quote.ID)
		}

		return fmt.Errorf("inserting quote: %w", err)
	}

	return nil
}

// GetByID loads a quote with its items in display order.
func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	var rec quoteRecord

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, fmt.Errorf("selecting quote: %w", err)
	}

	return rec.toDomain(), nil
}

// Update overwrites the quote row and replaces its item list.
func (r *QuoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	rec := toQuoteRecord(quote)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&quoteRecord{}).Where("id = ?", rec.ID).
			Select("Status", "Subtotal", "DiscountAmount", "TaxAmount", "TotalAmount", "Notes", "Metadata", "UpdatedAt").
			Updates(rec)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return domain.NewNotFoundError("quote", rec.ID)
		}

		if err := tx.Where("quote_id = ?", rec.ID).Delete(&quoteItemRecord{}).Error; err != nil {
			return err
		}

		if len(rec.Items) > 0 {
			if err := tx.Create(&rec.Items).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}

		return fmt.Errorf("updating quote: %w", err)
	}

	return nil
}

// Delete removes a quote and its items.
func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&quoteItemRecord{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&quoteRecord{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return domain.NewNotFoundError("quote", id)
		}

		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}

		return fmt.Errorf("deleting quote: %w", err)
	}

	return nil
}

// ListByUser returns one page of the user's quotes, newest first.
func (r *QuoteRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Quote, error) {
	var recs []quoteRecord

	offset := (page - 1) * limit

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	quotes := make([]*domain.Quote, len(recs))
	for i := range recs {
		quotes[i] = recs[i].toDomain()
	}

	return quotes, nil
}

// CountByUser returns the user's total quote count.
func (r *QuoteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Model(&quoteRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	return total, nil
}
