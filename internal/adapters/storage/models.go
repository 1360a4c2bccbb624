package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesdesk/quote-service/internal/domain"
)

// Storage records are deliberately separate from domain entities: the
// domain stays free of gorm tags, and schema changes never leak out of
// this package.

type quoteRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	UserID         string `gorm:"size:36;index;not null"`
	Status         string `gorm:"size:16;not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notes          string
	Metadata       map[string]any    `gorm:"serializer:json"`
	Items          []quoteItemRecord `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time         `gorm:"index;autoCreateTime:false"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime:false"`
	ExpiresAt      time.Time
}

func (quoteRecord) TableName() string { return "quotes" }

type quoteItemRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	QuoteID   string `gorm:"size:36;index;not null"`
	Position  int    `gorm:"not null"`
	SKUCode   string `gorm:"size:10;not null"`
	Quantity  int    `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (quoteItemRecord) TableName() string { return "quote_items" }

type skuRecord struct {
	ID            string `gorm:"primaryKey;size:36"`
	Code          string `gorm:"size:10;uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	Description   string
	Category      string          `gorm:"size:16;not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null"`
	IsActive      bool            `gorm:"not null;default:true"`
	Metadata      map[string]any  `gorm:"serializer:json"`
	CreatedAt     time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime:false"`
}

func (skuRecord) TableName() string { return "skus" }

type chatSessionRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index;not null"`
	Status    string `gorm:"size:16;not null"`
	StartTime time.Time `gorm:"index"`
	EndTime   *time.Time
	Context   map[string]any      `gorm:"serializer:json"`
	Messages  []chatMessageRecord `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (chatSessionRecord) TableName() string { return "chat_sessions" }

type chatMessageRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	SessionID string `gorm:"size:36;index;not null"`
	Sender    string `gorm:"size:16;not null"`
	Content   string `gorm:"not null"`
	SentAt    time.Time `gorm:"index"`
}

func (chatMessageRecord) TableName() string { return "chat_messages" }

func toQuoteRecord(q *domain.Quote) *quoteRecord {
	items := make([]quoteItemRecord, len(q.Items))
	for i, item := range q.Items {
		items[i] = quoteItemRecord{
			QuoteID:   q.ID,
			Position:  i,
			SKUCode:   item.SKUCode,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return &quoteRecord{
		ID:             q.ID,
		UserID:         q.UserID,
		Status:         string(q.Status),
		Subtotal:       q.Subtotal,
		DiscountAmount: q.DiscountAmount,
		TaxAmount:      q.TaxAmount,
		TotalAmount:    q.TotalAmount,
		Notes:          q.Notes,
		Metadata:       q.Metadata,
		Items:          items,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
		ExpiresAt:      q.ExpiresAt,
	}
}

func (r *quoteRecord) toDomain() *domain.Quote {
	items := make([]domain.QuoteItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.QuoteItem{
			SKUCode:   item.SKUCode,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	return &domain.Quote{
		ID:             r.ID,
		UserID:         r.UserID,
		Status:         domain.QuoteStatus(r.Status),
		Items:          items,
		Subtotal:       r.Subtotal,
		DiscountAmount: r.DiscountAmount,
		TaxAmount:      r.TaxAmount,
		TotalAmount:    r.TotalAmount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		ExpiresAt:      r.ExpiresAt,
		Notes:          r.Notes,
		Metadata:       r.Metadata,
	}
}

func toSKURecord(s *domain.SKU) *skuRecord {
	return &skuRecord{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Description:   s.Description,
		Category:      string(s.Category),
		Price:         s.Price,
		Cost:          s.Cost,
		StockQuantity: s.StockQuantity,
		IsActive:      s.IsActive,
		Metadata:      s.Metadata,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (r *skuRecord) toDomain() *domain.SKU {
	return &domain.SKU{
		ID:            r.ID,
		Code:          r.Code,
		Name:          r.Name,
		Description:   r.Description,
		Category:      domain.SKUCategory(r.Category),
		Price:         r.Price,
		Cost:          r.Cost,
		StockQuantity: r.StockQuantity,
		IsActive:      r.IsActive,
		Metadata:      r.Metadata,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toSessionRecord(s *domain.ChatSession) *chatSessionRecord {
	rec := &chatSessionRecord{
		ID:        s.ID,
		UserID:    s.UserID,
		Status:    string(s.Status),
		StartTime: s.StartTime,
		Context:   s.Context,
	}

	if !s.EndTime.IsZero() {
		end := s.EndTime
		rec.EndTime = &end
	}

	return rec
}

func (r *chatSessionRecord) toDomain() *domain.ChatSession {
	session := &domain.ChatSession{
		ID:        r.ID,
		UserID:    r.UserID,
		Status:    domain.ChatSessionStatus(r.Status),
		StartTime: r.StartTime,
		Context:   r.Context,
	}

	if r.EndTime != nil {
		session.EndTime = *r.EndTime
	}

	session.Messages = make([]domain.ChatMessage, len(r.Messages))
	for i, msg := range r.Messages {
		session.Messages[i] = domain.ChatMessage{
			ID:        msg.ID,
			SessionID: msg.SessionID,
			Sender:    domain.MessageSender(msg.Sender),
			Content:   msg.Content,
			SentAt:    msg.SentAt,
		}
	}

	return session
}

func toMessageRecord(m *domain.ChatMessage) *chatMessageRecord {
	return &chatMessageRecord{
		ID:        m.ID,
		SessionID: m.SessionID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		SentAt:    m.SentAt,
	}
}
