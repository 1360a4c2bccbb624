package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/salesdesk/quote-service/internal/domain"
)

// ChatRepository implements ports.ChatRepository on gorm.
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a chat repository backed by the store.
func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{db: store.DB()}
}

// CreateSession persists a new chat session.
func (r *ChatRepository) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	err := r.db.WithContext(ctx).Create(toSessionRecord(session)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictErrorWithDetails("chat session", "id already exists", session.ID)
		}

		return fmt.Errorf("inserting chat session: %w", err)
	}

	return nil
}

// GetSession retrieves a session with its messages in send order.
func (r *ChatRepository) GetSession(ctx context.Context, id string) (*domain.ChatSession, error) {
	var rec chatSessionRecord

	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("sent_at ASC, id ASC") }).
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("chat session", id)
		}

		return nil, fmt.Errorf("selecting chat session: %w", err)
	}

	return rec.toDomain(), nil
}

// UpdateSession overwrites session fields (status, end time, context).
func (r *ChatRepository) UpdateSession(ctx context.Context, session *domain.ChatSession) error {
	rec := toSessionRecord(session)

	res := r.db.WithContext(ctx).
		Model(&chatSessionRecord{}).
		Where("id = ?", rec.ID).
		Select("Status", "EndTime", "Context").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("updating chat session: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("chat session", session.ID)
	}

	return nil
}

// ListSessionsByUser returns the user's sessions, newest first.
// Messages are not loaded; callers fetch a single session for history.
func (r *ChatRepository) ListSessionsByUser(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
	var recs []chatSessionRecord

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing chat sessions: %w", err)
	}

	sessions := make([]*domain.ChatSession, len(recs))
	for i := range recs {
		sessions[i] = recs[i].toDomain()
	}

	return sessions, nil
}

// AppendMessage adds a message to a session.
func (r *ChatRepository) AppendMessage(ctx context.Context, message *domain.ChatMessage) error {
	err := r.db.WithContext(ctx).Create(toMessageRecord(message)).Error
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}

	return nil
}
