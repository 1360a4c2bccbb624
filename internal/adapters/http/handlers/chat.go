package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
)

// ChatHandler handles chat session HTTP endpoints.
type ChatHandler struct {
	service *app.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service *app.ChatService) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// SendMessageRequest is the request body for posting a chat message.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,notempty"`
}

// ChatMessageResponse is the HTTP representation of one chat message.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sentAt"`
}

// ChatSessionResponse is the HTTP representation of a chat session.
type ChatSessionResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"userId"`
	Status    string                `json:"status"`
	StartTime time.Time             `json:"startTime"`
	EndTime   *time.Time            `json:"endTime,omitempty"`
	Messages  []ChatMessageResponse `json:"messages"`
}

func toMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		SessionID: m.SessionID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		SentAt:    m.SentAt,
	}
}

func toSessionResponse(s *domain.ChatSession) *ChatSessionResponse {
	messages := make([]ChatMessageResponse, len(s.Messages))
	for i := range s.Messages {
		messages[i] = toMessageResponse(&s.Messages[i])
	}

	resp := &ChatSessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Status:    string(s.Status),
		StartTime: s.StartTime,
		Messages:  messages,
	}

	if !s.EndTime.IsZero() {
		end := s.EndTime
		resp.EndTime = &end
	}

	return resp
}

// Start handles POST /api/v1/chat/sessions.
func (h *ChatHandler) Start(c *gin.Context) {
	session, err := h.service.Start(c.Request.Context(), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// SendMessage handles POST /api/v1/chat/sessions/:id/messages.
// Returns the persisted user message and the assistant's reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	messages, err := h.service.SendMessage(c.Request.Context(), c.Param("id"), req.Content, requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	responses := make([]ChatMessageResponse, len(messages))
	for i := range messages {
		responses[i] = toMessageResponse(&messages[i])
	}

	c.JSON(http.StatusCreated, gin.H{"messages": responses})
}

// GetSession handles GET /api/v1/chat/sessions/:id.
func (h *ChatHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// History handles GET /api/v1/chat/sessions.
func (h *ChatHandler) History(c *gin.Context) {
	sessions, err := h.service.History(c.Request.Context(), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	responses := make([]*ChatSessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = toSessionResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"sessions": responses})
}

// Close handles POST /api/v1/chat/sessions/:id/close.
func (h *ChatHandler) Close(c *gin.Context) {
	session, err := h.service.Close(c.Request.Context(), c.Param("id"), requesterID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// RegisterChatRoutes registers chat routes on the given router group.
func (h *ChatHandler) RegisterChatRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/chat/sessions")
	sessions.POST("", h.Start)
	sessions.GET("", h.History)
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/messages", h.SendMessage)
	sessions.POST("/:id/close", h.Close)
}
