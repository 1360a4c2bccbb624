// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/salesdesk/quote-service/internal/adapters/clients"
	"github.com/salesdesk/quote-service/internal/domain"
	"github.com/salesdesk/quote-service/internal/platform/logging"
)

// systemPrompt frames the model as the product's sales assistant.
const systemPrompt = "You are a knowledgeable sales assistant. Help the customer " +
	"choose products, answer pricing questions, and guide them toward requesting " +
	"a quote. Be concise and honest about what you do not know."

// AIClientConfig contains configuration for the AI model client.
type AIClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the model API root.
	Client *clients.Client

	// Model is the model identifier sent with each completion request.
	Model string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// AIModelClient implements ports.AIClient against an OpenAI-compatible
// chat completions API. External DTOs never leave this file.
type AIModelClient struct {
	BaseAdapter

	model  string
	logger *slog.Logger
}

// NewAIModelClient creates a new AI model client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewAIModelClient(cfg AIClientConfig) *AIModelClient {
	if cfg.Client == nil {
		panic("AIModelClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AIModelClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, "ai-model"),
		model:       cfg.Model,
		logger:      logger,
	}
}

// chatMessagePayload is the external message DTO.
type chatMessagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the external request DTO.
type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []chatMessagePayload `json:"messages"`
}

// chatCompletionResponse is the external response DTO.
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessagePayload `json:"message"`
	} `json:"choices"`
}

// Complete produces the assistant's reply to a user message given prior
// conversation history. Implements ports.AIClient.
func (c *AIModelClient) Complete(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	const path = "/chat/completions"

	payload := chatCompletionRequest{
		Model:    c.model,
		Messages: buildMessages(history, message),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding completion request: %w", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting completion request",
		slog.String("path", path),
		slog.Int("history_len", len(history)))

	body, err := c.Post(ctx, path, bytes.NewReader(data), "chat completion")
	if err != nil {
		return "", err
	}

	ext, err := DecodeResponse[chatCompletionResponse](body)
	if err != nil {
		return "", domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if len(ext.Choices) == 0 {
		return "", domain.NewUnavailableError(c.ServiceName(), "completion returned no choices")
	}

	reply := ext.Choices[0].Message.Content

	c.logger.Log(ctx, logging.LevelTrace, "completion received",
		slog.Int("reply_len", len(reply)))

	return reply, nil
}

// buildMessages translates domain history to the external message shape,
// prefixing the system prompt and appending the new user message.
func buildMessages(history []domain.ChatMessage, message string) []chatMessagePayload {
	messages := make([]chatMessagePayload, 0, len(history)+2)
	messages = append(messages, chatMessagePayload{Role: "system", Content: systemPrompt})

	for _, msg := range history {
		role := "user"
		if msg.Sender == domain.SenderAssistant {
			role = "assistant"
		}

		messages = append(messages, chatMessagePayload{Role: role, Content: msg.Content})
	}

	return append(messages, chatMessagePayload{Role: "user", Content: message})
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *AIModelClient) Name() string {
	return c.ServiceName()
}

// Check verifies connectivity by listing available models.
// Implements ports.HealthChecker.
func (c *AIModelClient) Check(ctx context.Context) error {
	resp, err := c.Client().Get(ctx, "/models")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model API returned status %d", resp.StatusCode)
	}

	return nil
}
