package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/logging"
	"github.com/salesdesk/quote-service/internal/ports"
)

// ChatService runs the AI salesperson conversations: it owns session
// bookkeeping and routes user messages through the external model.
type ChatService struct {
	sessions ports.ChatRepository
	ai       ports.AIClient
	executor *Executor
	logger   *slog.Logger
	now      func() time.Time
}

// ChatServiceConfig contains the chat service's dependencies.
type ChatServiceConfig struct {
	Sessions ports.ChatRepository
	AI       ports.AIClient
	Logger   *slog.Logger
	Now      func() time.Time
}

// NewChatService creates a chat service. Panics if a dependency is missing.
func NewChatService(cfg ChatServiceConfig) *ChatService {
	if cfg.Sessions == nil {
		panic("ChatService: Sessions repository is required")
	}

	if cfg.AI == nil {
		panic("ChatService: AI client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &ChatService{
		sessions: cfg.Sessions,
		ai:       cfg.AI,
		executor: NewExecutor(logger),
		logger:   logger.With(slog.String("component", "app.ChatService")),
		now:      now,
	}
}

// Start opens a new active session for the user.
func (s *ChatService) Start(ctx context.Context, userID string) (*domain.ChatSession, error) {
	session := &domain.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    domain.ChatSessionActive,
		StartTime: s.now(),
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("creating chat session: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "chat session started",
		slog.String("session_id", session.ID),
		slog.String("user_id", userID),
	)

	return session, nil
}

// chatExchange is the executor input for one user/assistant round trip.
type chatExchange struct {
	session *domain.ChatSession
	content string
}

// SendMessage obtains the assistant's reply to the user's message and
// records both sides of the exchange. It runs as a transactional
// operation: the reply is generated and verified before either message
// is persisted, so a model failure leaves the session untouched.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content, userID string) ([]domain.ChatMessage, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	op := Operation[chatExchange, string, []domain.ChatMessage, []domain.ChatMessage]{
		Name: "chat.send_message",

		Validate: func(_ context.Context, in chatExchange) error {
			if in.content == "" {
				return domain.NewValidationError("content", "cannot be empty")
			}

			if !in.session.Active() {
				return domain.NewConflictError("chat session", "session is closed")
			}

			return nil
		},

		Perform: func(ctx context.Context, in chatExchange) (string, error) {
			return s.ai.Complete(ctx, in.session.Messages, in.content)
		},

		Verify: func(_ context.Context, in chatExchange, reply string) ([]domain.ChatMessage, error) {
			if reply == "" {
				return nil, domain.NewUnavailableError("ai-model", "empty completion")
			}

			sent := s.now()

			return []domain.ChatMessage{
				{
					ID:        uuid.NewString(),
					SessionID: in.session.ID,
					Sender:    domain.SenderUser,
					Content:   in.content,
					SentAt:    sent,
				},
				{
					ID:        uuid.NewString(),
					SessionID: in.session.ID,
					Sender:    domain.SenderAssistant,
					Content:   reply,
					SentAt:    sent,
				},
			}, nil
		},

		Archive: func(ctx context.Context, _ chatExchange, messages []domain.ChatMessage) error {
			for i := range messages {
				if err := s.sessions.AppendMessage(ctx, &messages[i]); err != nil {
					return fmt.Errorf("saving %s message: %w", messages[i].Sender, err)
				}
			}

			return nil
		},

		Respond: func(_ context.Context, _ chatExchange, messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
			return messages, nil
		},
	}

	return Execute(ctx, s.executor, op, chatExchange{session: session, content: content})
}

// GetSession retrieves a session with its messages for its owner.
func (s *ChatService) GetSession(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	return s.ownedSession(ctx, sessionID, userID)
}

// History lists the user's sessions, newest first.
func (s *ChatService) History(ctx context.Context, userID string) ([]*domain.ChatSession, error) {
	sessions, err := s.sessions.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing chat sessions: %w", err)
	}

	return sessions, nil
}

// Close ends an active session.
func (s *ChatService) Close(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if err := session.Close(s.now()); err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("closing chat session: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "chat session closed",
		slog.String("session_id", session.ID),
	)

	return session, nil
}

func (s *ChatService) ownedSession(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("getting chat session: %w", err)
	}

	if !session.OwnedBy(userID) {
		return nil, domain.NewForbiddenError("chat access", "session belongs to another user")
	}

	return session, nil
}

func (s *ChatService) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}

	return s.logger
}
