package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/asonkiya/novel-chrome-extension/internal/provider"
)

const defaultModel = "gpt-4.1-mini"

// Config configures the OpenAI translator.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Translator calls the OpenAI chat completions API in JSON mode.
type Translator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	log         *slog.Logger
}

// NewTranslator creates a Translator. BaseURL may point to any
// OpenAI-compatible endpoint.
func NewTranslator(cfg Config, logger *slog.Logger) *Translator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Translator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         logger.With("adapter", "openai"),
	}
}

// Name returns the backend name.
func (t *Translator) Name() string { return "openai" }

// Translate sends one chapter and returns the JSON object from the reply.
func (t *Translator) Translate(ctx context.Context, req provider.TranslationRequest) (json.RawMessage, error) {
	user, err := provider.UserMessage(req)
	if err != nil {
		return nil, fmt.Errorf("openai: encode request: %w", err)
	}

	chatReq := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: provider.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: t.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if t.maxTokens > 0 {
		chatReq.MaxCompletionTokens = t.maxTokens
	}

	t.log.DebugContext(ctx, "openai request",
		slog.String("model", t.model),
		slog.Int64("novel_id", req.NovelID),
		slog.Int("text_len", len(req.Text)),
	)

	resp, err := t.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	t.log.DebugContext(ctx, "openai response",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return json.RawMessage(content), nil
}
