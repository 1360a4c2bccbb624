package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/quote-service/internal/adapters/http/dto"
	"github.com/salesdesk/quote-service/internal/app"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/mocks"
)

type chatHandlerMocks struct {
	sessions *mocks.MockChatRepository
	ai       *mocks.MockAIClient
}

func setupChatHandler(t *testing.T) (*ChatHandler, chatHandlerMocks) {
	t.Helper()

	m := chatHandlerMocks{
		sessions: mocks.NewMockChatRepository(t),
		ai:       mocks.NewMockAIClient(t),
	}

	service := app.NewChatService(app.ChatServiceConfig{
		Sessions: m.sessions,
		AI:       m.ai,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewChatHandler(service), m
}

func storedSession(id, userID string) *domain.ChatSession {
	return &domain.ChatSession{
		ID:        id,
		UserID:    userID,
		Status:    domain.ChatSessionActive,
		StartTime: time.Now().UTC().Add(-time.Minute),
	}
}

func TestChatHandler_Start(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().CreateSession(mock.Anything, mock.Anything).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions", "", "user-1")

	handler.Start(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ChatSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.EndTime)
}

func TestChatHandler_SendMessage(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().GetSession(mock.Anything, "s-1").Return(storedSession("s-1", "user-1"), nil)
	m.ai.EXPECT().Complete(mock.Anything, mock.Anything, "how much are widgets?").
		Return("Widgets are 19.99 each.", nil)
	m.sessions.EXPECT().AppendMessage(mock.Anything, mock.Anything).Return(nil).Times(2)

	body := `{"content":"how much are widgets?"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions/s-1/messages", body, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.SendMessage(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Messages []ChatMessageResponse `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Sender)
	assert.Equal(t, "how much are widgets?", resp.Messages[0].Content)
	assert.Equal(t, "assistant", resp.Messages[1].Sender)
	assert.Equal(t, "Widgets are 19.99 each.", resp.Messages[1].Content)
}

func TestChatHandler_SendMessage_EmptyContent(t *testing.T) {
	handler, _ := setupChatHandler(t)

	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions/s-1/messages", `{"content":"  "}`, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.SendMessage(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "content")
}

func TestChatHandler_SendMessage_ModelUnavailable(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().GetSession(mock.Anything, "s-1").Return(storedSession("s-1", "user-1"), nil)
	m.ai.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).
		Return("", domain.NewUnavailableError("ai-model", "timeout"))

	body := `{"content":"hello"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions/s-1/messages", body, "user-1")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.SendMessage(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeUnavailable, resp.Error.Code)
}

func TestChatHandler_GetSession_Forbidden(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().GetSession(mock.Anything, "s-1").Return(storedSession("s-1", "user-1"), nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/chat/sessions/s-1", "", "user-2")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.GetSession(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatHandler_History(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().ListSessionsByUser(mock.Anything, "user-1").
		Return([]*domain.ChatSession{storedSession("s-2", "user-1"), storedSession("s-1", "user-1")}, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/chat/sessions", "", "user-1")

	handler.History(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sessions []*ChatSessionResponse `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "s-2", resp.Sessions[0].ID)
}

func TestChatHandler_Close(t *testing.T) {
	handler, m := setupChatHandler(t)

	m.sessions.EXPECT().GetSession(mock.Anything, "s-1").Return(storedSession("s-1", "user-1"), nil)
	m.sessions.EXPECT().UpdateSession(mock.Anything, mock.Anything).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions/s-1/close", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.Close(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ChatSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "closed", resp.Status)
	require.NotNil(t, resp.EndTime)
}

func TestChatHandler_Close_AlreadyClosed(t *testing.T) {
	handler, m := setupChatHandler(t)

	closed := storedSession("s-1", "user-1")
	closed.Status = domain.ChatSessionClosed
	closed.EndTime = time.Now().UTC()
	m.sessions.EXPECT().GetSession(mock.Anything, "s-1").Return(closed, nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/chat/sessions/s-1/close", "", "user-1")
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.Close(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChatHandler_RegisterChatRoutes(t *testing.T) {
	handler, _ := setupChatHandler(t)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterChatRoutes(api)

	expectedRoutes := []string{
		"POST /api/v1/chat/sessions",
		"GET /api/v1/chat/sessions",
		"GET /api/v1/chat/sessions/:id",
		"POST /api/v1/chat/sessions/:id/messages",
		"POST /api/v1/chat/sessions/:id/close",
	}

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range expectedRoutes {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
