// Package openaillm implements llm.Completer with an OpenAI-compatible chat API.
package openaillm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/llm"
	openai "github.com/sashabaranov/go-openai"
)

const (
	temperature = 0.2
	maxTokens   = 1000
)

// chatCompleter is satisfied by *openai.Client.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client implements llm.Completer.
type Client struct {
	api    chatCompleter
	model  string
	logger *slog.Logger
}

var _ llm.Completer = (*Client)(nil)

// New builds a Client. BaseURL overrides the API host for compatible services.
func New(cfg *config.LLM, logger *slog.Logger) *Client {
	oc := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return newWithAPI(openai.NewClientWithConfig(oc), cfg.Model, logger)
}

func newWithAPI(api chatCompleter, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{api: api, model: model, logger: logger.With("provider", "openai")}
}

// CompleteJSON implements llm.Completer. The reply must be a JSON object.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	if strings.TrimSpace(user) == "" {
		return nil, domain.NewAdapterError(llm.Adapter, domain.ErrInvalidInput, "LLM prompt is empty", nil)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		c.logger.Error("chat completion failed", "error", err)
		return nil, domain.NewAdapterError(
			llm.Adapter,
			domain.ErrRequestFailed,
			fmt.Sprintf("LLM request failed: %v", err),
			err,
		)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewAdapterError(llm.Adapter, domain.ErrEmptyResult, "LLM returned no choices", nil)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return nil, domain.NewAdapterError(
			llm.Adapter,
			domain.ErrInvalidResponseFormat,
			fmt.Sprintf("LLM returned invalid JSON: %v", err),
			err,
		)
	}
	c.logger.Debug("chat completion parsed", "model", resp.Model, "total_tokens", resp.Usage.TotalTokens)
	return json.RawMessage(content), nil
}
