package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/asonkiya/novel-chrome-extension/internal/provider"
)

const defaultModel = "claude-sonnet-4-5"

// Config configures the Anthropic translator.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
}

// Translator calls the Anthropic Messages API.
type Translator struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
	log         *slog.Logger
}

// NewTranslator creates a Translator.
func NewTranslator(cfg Config, logger *slog.Logger) *Translator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 16000
	}

	return &Translator{
		client:      anthropic.NewClient(opts...),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		log:         logger.With("adapter", "anthropic"),
	}
}

// Name returns the backend name.
func (t *Translator) Name() string { return "anthropic" }

// Translate sends one chapter and returns the JSON object found in the reply.
func (t *Translator) Translate(ctx context.Context, req provider.TranslationRequest) (json.RawMessage, error) {
	user, err := provider.UserMessage(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic: encode request: %w", err)
	}

	t.log.DebugContext(ctx, "anthropic request",
		slog.String("model", t.model),
		slog.Int64("novel_id", req.NovelID),
		slog.Int("text_len", len(req.Text)),
	)

	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(t.model),
		MaxTokens:   t.maxTokens,
		Temperature: anthropic.Float(t.temperature),
		System: []anthropic.TextBlockParam{
			{Text: provider.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: messages: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("anthropic: empty response")
	}

	t.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	// The model may wrap the object in prose or a code fence. Anything that
	// is not an object is passed through for the caller to reject.
	out := text.String()
	if obj, ok := extractJSON(out); ok {
		out = obj
	}
	return json.RawMessage(strings.TrimSpace(out)), nil
}

// extractJSON returns the text between the first "{" and the last "}".
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
