package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Translation.validate(); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	if err := c.Context.validate(); err != nil {
		return fmt.Errorf("context: %w", err)
	}

	if c.Import.MaxBodyBytes <= 0 {
		return fmt.Errorf("import.max_body_bytes must be > 0 (got %d)", c.Import.MaxBodyBytes)
	}

	return nil
}

func (t *TranslationConfig) validate() error {
	t.Provider = strings.ToLower(strings.TrimSpace(t.Provider))
	if !slices.Contains([]string{ProviderOpenAI, ProviderAnthropic, ProviderEcho}, t.Provider) {
		return fmt.Errorf("provider must be one of openai, anthropic, echo (got %q)", t.Provider)
	}
	if t.Provider == ProviderOpenAI && t.OpenAIAPIKey == "" {
		return fmt.Errorf("openai_api_key is required for provider openai")
	}
	if t.Provider == ProviderAnthropic && t.AnthropicAPIKey == "" {
		return fmt.Errorf("anthropic_api_key is required for provider anthropic")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	if t.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", t.MaxTokens)
	}
	if t.Temperature < 0 || t.Temperature > 2 {
		return fmt.Errorf("temperature must be in 0..2 (got %v)", t.Temperature)
	}
	t.Constraints = ParseConstraints(t.ConstraintsRaw)
	return nil
}

func (c *ContextConfig) validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"slice_recent_window", c.SliceRecentWindow},
		{"slice_min_count", c.SliceMinCount},
		{"slice_max_locks", c.SliceMaxLocks},
		{"slice_max_entities", c.SliceMaxEntities},
		{"prune_keep_recent_window", c.PruneKeepRecentWindow},
		{"prune_min_count_keep", c.PruneMinCountKeep},
		{"prune_max_locks", c.PruneMaxLocks},
		{"prune_max_entities", c.PruneMaxEntities},
	}
	for _, ch := range checks {
		if ch.value < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", ch.name, ch.value)
		}
	}
	if c.SliceMaxLocks > c.PruneMaxLocks {
		return fmt.Errorf("slice_max_locks (%d) must not exceed prune_max_locks (%d)", c.SliceMaxLocks, c.PruneMaxLocks)
	}
	if c.SliceMaxEntities > c.PruneMaxEntities {
		return fmt.Errorf("slice_max_entities (%d) must not exceed prune_max_entities (%d)", c.SliceMaxEntities, c.PruneMaxEntities)
	}
	return nil
}

// ParseConstraints splits a "|"-separated list of extra translation
// constraints. Blank entries are dropped; an empty string returns nil.
func ParseConstraints(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
