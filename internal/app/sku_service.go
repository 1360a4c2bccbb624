package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/logging"
	"github.com/salesdesk/quote-service/internal/ports"
)

// NewSKURequest carries the fields for creating a catalog entry.
type NewSKURequest struct {
	Code          string
	Name          string
	Description   string
	Category      domain.SKUCategory
	Price         decimal.Decimal
	Cost          decimal.Decimal
	StockQuantity int
	Metadata      map[string]any
}

// SKUPatch is an explicit partial update of whitelisted SKU fields.
// The code is immutable once created; quotes reference it.
type SKUPatch struct {
	Name          *string
	Description   *string
	Category      *domain.SKUCategory
	Price         *decimal.Decimal
	Cost          *decimal.Decimal
	StockQuantity *int
	IsActive      *bool
	Metadata      map[string]any
}

// SKUService manages the product catalog that quotes are priced from.
type SKUService struct {
	skus   ports.SKURepository
	logger *slog.Logger
	now    func() time.Time
}

// SKUServiceConfig contains the catalog service's dependencies.
type SKUServiceConfig struct {
	SKUs   ports.SKURepository
	Logger *slog.Logger
	Now    func() time.Time
}

// NewSKUService creates a catalog service. Panics if the repository is missing.
func NewSKUService(cfg SKUServiceConfig) *SKUService {
	if cfg.SKUs == nil {
		panic("SKUService: SKUs repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &SKUService{
		skus:   cfg.SKUs,
		logger: logger.With(slog.String("component", "app.SKUService")),
		now:    now,
	}
}

// Create validates and persists a new SKU. A duplicate code is a conflict.
func (s *SKUService) Create(ctx context.Context, req NewSKURequest) (*domain.SKU, error) {
	now := s.now()

	sku := &domain.SKU{
		ID:            uuid.NewString(),
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price.Round(domain.MoneyPlaces),
		Cost:          req.Cost.Round(domain.MoneyPlaces),
		StockQuantity: req.StockQuantity,
		IsActive:      true,
		Metadata:      req.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := sku.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.skus.GetByCode(ctx, sku.Code); err == nil {
		return nil, domain.NewConflictErrorWithDetails("sku", "code already exists", sku.Code)
	} else if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("checking sku code: %w", err)
	}

	if err := s.skus.Create(ctx, sku); err != nil {
		return nil, fmt.Errorf("creating sku: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "sku created",
		slog.String("sku_id", sku.ID),
		slog.String("code", sku.Code),
	)

	return sku, nil
}

// Get retrieves a SKU by ID.
func (s *SKUService) Get(ctx context.Context, id string) (*domain.SKU, error) {
	sku, err := s.skus.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting sku: %w", err)
	}

	return sku, nil
}

// Update applies an explicit patch and re-validates the SKU.
// Price changes never touch existing quotes; they snapshot unit prices.
func (s *SKUService) Update(ctx context.Context, id string, patch SKUPatch) (*domain.SKU, error) {
	sku, err := s.skus.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting sku: %w", err)
	}

	if patch.Name != nil {
		sku.Name = *patch.Name
	}

	if patch.Description != nil {
		sku.Description = *patch.Description
	}

	if patch.Category != nil {
		sku.Category = *patch.Category
	}

	if patch.Price != nil {
		sku.Price = patch.Price.Round(domain.MoneyPlaces)
	}

	if patch.Cost != nil {
		sku.Cost = patch.Cost.Round(domain.MoneyPlaces)
	}

	if patch.StockQuantity != nil {
		sku.StockQuantity = *patch.StockQuantity
	}

	if patch.IsActive != nil {
		sku.IsActive = *patch.IsActive
	}

	if patch.Metadata != nil {
		sku.Metadata = patch.Metadata
	}

	if err := sku.Validate(); err != nil {
		return nil, err
	}

	sku.UpdatedAt = s.now()

	if err := s.skus.Update(ctx, sku); err != nil {
		return nil, fmt.Errorf("updating sku: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "sku updated", slog.String("sku_id", sku.ID))

	return sku, nil
}

// Delete removes a SKU from the catalog. Existing quotes keep their
// snapshotted prices and codes.
func (s *SKUService) Delete(ctx context.Context, id string) error {
	if _, err := s.skus.GetByID(ctx, id); err != nil {
		return fmt.Errorf("getting sku: %w", err)
	}

	if err := s.skus.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting sku: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "sku deleted", slog.String("sku_id", id))

	return nil
}

// Search returns catalog entries matching the filter plus the total count.
func (s *SKUService) Search(ctx context.Context, filter ports.SKUFilter) ([]*domain.SKU, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.Limit < 1 {
		filter.Limit = 10
	}

	skus, total, err := s.skus.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("searching skus: %w", err)
	}

	return skus, total, nil
}

func (s *SKUService) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}

	return s.logger
}
