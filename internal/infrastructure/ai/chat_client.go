package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanthalloor/governance-portal/internal/api/metrics"
	"github.com/kanthalloor/governance-portal/internal/core/domain"
)

const systemPrompt = "You are Governance Sahayi, a helpful AI assistant for the e-Kanthalloor digital governance portal. " +
	"Your goal is to assist citizens with finding welfare schemes, understanding application processes, and navigating local government services. " +
	"Be polite, concise, and helpful. If asked about specific scheme details you don't know, suggest they check the 'Welfare Schemes' section."

const defaultTimeout = 15 * time.Second

// Config captures the settings for the chat-completion provider.
type Config struct {
	BaseURL string // e.g. https://openrouter.ai/api/v1
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ChatClient proxies citizen questions to an OpenRouter-compatible
// chat-completions API. Calls carry a bounded timeout and are never retried;
// every failure mode collapses into domain.ErrAIUnavailable.
type ChatClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  zerolog.Logger
}

func NewChatClient(cfg Config, logger zerolog.Logger) *ChatClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ChatClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the user message with the portal system prompt and returns
// the assistant reply.
func (c *ChatClient) Complete(ctx context.Context, userMessage string) (string, error) {
	payload := chatRequest{
		Model:     c.model,
		MaxTokens: 1000,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrAIUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrAIUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.fail("request failed", err)
		return "", domain.ErrAIUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.fail(fmt.Sprintf("status %d", resp.StatusCode), nil)
		return "", domain.ErrAIUnavailable
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.fail("read body failed", err)
		return "", domain.ErrAIUnavailable
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Choices) == 0 {
		c.fail("malformed payload", err)
		return "", domain.ErrAIUnavailable
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return parsed.Choices[0].Message.Content, nil
}

func (c *ChatClient) fail(reason string, err error) {
	metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
	c.logger.Warn().Err(err).Str("reason", reason).Msg("chat completion call failed")
}
