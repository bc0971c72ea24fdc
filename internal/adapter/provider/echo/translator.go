package echo

import (
	"context"
	"encoding/json"

	"github.com/asonkiya/novel-chrome-extension/internal/provider"
)

// Translator is an offline translation backend. It returns the source text
// unchanged and proposes no context updates. Used for development and
// tests without API keys.
type Translator struct{}

// NewTranslator creates an echo translator.
func NewTranslator() *Translator { return &Translator{} }

// Name returns the backend name.
func (t *Translator) Name() string { return "echo" }

// Translate echoes req.Text back as the translation.
func (t *Translator) Translate(ctx context.Context, req provider.TranslationRequest) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"translation":     req.Text,
		"context_updates": map[string]any{},
	})
}
