package contextmem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Updates is the validated form of the context_updates object returned by a
// translation step. Only well-formed proposals survive parsing.
type Updates struct {
	Locks      []LockProposal
	Entities   []EntityProposal
	StylePatch map[string]any

	// Skipped counts proposals dropped because they were malformed.
	Skipped int
}

// LockProposal proposes a fixed rendering for a source term.
type LockProposal struct {
	Src    string
	Dst    string
	Reason string
}

// EntityProposal proposes a canonical rendering for a named entity.
type EntityProposal struct {
	Type string
	Src  string
	Dst  string
}

// IsEmpty reports whether the updates carry nothing to apply.
func (u Updates) IsEmpty() bool {
	return len(u.Locks) == 0 && len(u.Entities) == 0 && u.StylePatch == nil
}

// ParseUpdatesJSON parses an untrusted context_updates payload. Absent,
// null or non-object input yields empty updates.
func ParseUpdatesJSON(raw json.RawMessage) Updates {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !isObject(raw) {
		return Updates{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return Updates{}
	}
	return ParseUpdates(m)
}

// ParseUpdates extracts the valid proposals from a decoded context_updates
// object. Items with a missing, non-string or blank src or dst are skipped;
// the rest of the batch still applies.
func ParseUpdates(m map[string]any) Updates {
	var u Updates

	if items, ok := m["locks_add"].([]any); ok {
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				u.Skipped++
				continue
			}
			src, dst, ok := srcDst(obj)
			if !ok {
				u.Skipped++
				continue
			}
			u.Locks = append(u.Locks, LockProposal{
				Src:    src,
				Dst:    dst,
				Reason: textOr(obj["reason"], DefaultLockReason),
			})
		}
	}

	if items, ok := m["entities_add"].([]any); ok {
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				u.Skipped++
				continue
			}
			src, dst, ok := srcDst(obj)
			if !ok {
				u.Skipped++
				continue
			}
			u.Entities = append(u.Entities, EntityProposal{
				Type: textOr(obj["type"], DefaultEntityType),
				Src:  src,
				Dst:  dst,
			})
		}
	}

	if patch, ok := m["style_patch"].(map[string]any); ok {
		u.StylePatch = patch
	}

	return u
}

func srcDst(obj map[string]any) (string, string, bool) {
	src, ok := obj["src"].(string)
	if !ok {
		return "", "", false
	}
	dst, ok := obj["dst"].(string)
	if !ok {
		return "", "", false
	}
	src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
	if src == "" || dst == "" {
		return "", "", false
	}
	return src, dst, true
}

// textOr renders v as text, falling back to def for absent or zero values.
func textOr(v any, def string) string {
	switch t := v.(type) {
	case nil:
		return def
	case string:
		if t == "" {
			return def
		}
		return t
	case bool:
		if !t {
			return def
		}
	case float64:
		if t == 0 {
			return def
		}
	case []any:
		if len(t) == 0 {
			return def
		}
	case map[string]any:
		if len(t) == 0 {
			return def
		}
	}
	return fmt.Sprint(v)
}
