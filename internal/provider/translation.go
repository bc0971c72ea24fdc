// Package provider defines the boundary between the translation service and
// the external translation backends.
package provider

import (
	"context"
	"encoding/json"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
)

// TranslationRequest is sent to a translation backend for one chapter.
type TranslationRequest struct {
	NovelID       int64            `json:"novel_id"`
	SourceLang    string           `json:"source_lang"`
	TargetLang    string           `json:"target_lang"`
	Text          string           `json:"text"`
	ContextMemory contextmem.Slice `json:"context_memory"`
	Constraints   []string         `json:"constraints"`
}

// Translator calls a translation backend. Implementations return the raw
// JSON object produced by the backend without validating it.
type Translator interface {
	Translate(ctx context.Context, req TranslationRequest) (json.RawMessage, error)
	Name() string
}

// DefaultConstraints are sent when no constraints are configured.
var DefaultConstraints = []string{
	"Follow context_memory.locks and context_memory.canon.entities exactly when they match.",
	"Propose updates only for recurring names/items/skills/factions/places/titles/jargon.",
	"Do not add common words.",
}

// SystemPrompt instructs chat based backends about the response schema.
const SystemPrompt = `You are a professional novel translator.
You receive a JSON object with the chapter text, the source and target languages,
a context_memory object and a list of constraints.

Rules:
- Follow context_memory.locks exactly: every locked src must be rendered as its dst.
- Use context_memory.canon.entities for names of people, places, organizations, items, skills and titles.
- Respect context_memory.style.
- Preserve paragraph breaks of the source text.
- Do not add commentary, notes, or explanations.

Return ONLY a JSON object with this exact schema:
{
  "translation": "<full translated chapter text>",
  "context_updates": {
    "locks_add": [{"src": "<source term>", "dst": "<rendering>", "reason": "<short reason>"}],
    "entities_add": [{"type": "person|place|org|item|skill|title|other", "src": "<source name>", "dst": "<rendering>"}],
    "style_patch": {}
  }
}

Only propose locks and entities for terms that appear in this chapter and should
be rendered the same way in later chapters.`

// UserMessage encodes the request as the user turn of a chat exchange.
func UserMessage(req TranslationRequest) (string, error) {
	if req.Constraints == nil {
		req.Constraints = []string{}
	}
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
