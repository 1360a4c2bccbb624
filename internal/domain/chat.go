package domain

import "time"

// ChatSessionStatus is the lifecycle state of a chat session.
type ChatSessionStatus string

const (
	ChatSessionActive ChatSessionStatus = "active"
	ChatSessionClosed ChatSessionStatus = "closed"
)

// MessageSender identifies who authored a chat message.
type MessageSender string

const (
	SenderUser      MessageSender = "user"
	SenderAssistant MessageSender = "assistant"
)

// ChatSession is a conversation between a user and the AI salesperson.
type ChatSession struct {
	ID        string
	UserID    string
	Status    ChatSessionStatus
	StartTime time.Time
	// EndTime is set when the session is closed.
	EndTime  time.Time
	Context  map[string]any
	Messages []ChatMessage
}

// ChatMessage is a single utterance within a chat session.
type ChatMessage struct {
	ID        string
	SessionID string
	Sender    MessageSender
	Content   string
	SentAt    time.Time
}

// Active reports whether the session still accepts messages.
func (s *ChatSession) Active() bool {
	return s.Status == ChatSessionActive
}

// OwnedBy reports whether the session belongs to the given user.
func (s *ChatSession) OwnedBy(userID string) bool {
	return s.UserID == userID
}

// Close ends the session, recording the end time. Closing an already
// closed session is a conflict.
func (s *ChatSession) Close(now time.Time) error {
	if s.Status == ChatSessionClosed {
		return NewConflictError("chat session", "already closed")
	}

	s.Status = ChatSessionClosed
	s.EndTime = now

	return nil
}
