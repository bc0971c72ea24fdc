// Package contextmem implements the per-novel context memory: the document
// of locked renderings, canonical entities and style rules that keeps a
// serialized translation consistent from chapter to chapter.
//
// The package is pure. It never performs I/O; callers load a stored
// document with Parse, transform it with Merge, BuildSlice and Prune, and
// persist the result of json.Marshal.
package contextmem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// CurrentVersion is the schema version assigned to documents that carry none.
const CurrentVersion = 1

// DefaultLockReason is stored when a lock proposal carries no reason.
const DefaultLockReason = "recurring term"

// DefaultEntityType is used when an entity proposal carries no type.
const DefaultEntityType = "other"

// Entity types suggested to the translation model. They are not enforced:
// any non-empty string is accepted as a type.
const (
	EntityPerson = "person"
	EntityPlace  = "place"
	EntityOrg    = "org"
	EntityItem   = "item"
	EntitySkill  = "skill"
	EntityTitle  = "title"
	EntityOther  = "other"
)

// Document is the persisted context memory of a novel.
type Document struct {
	Version   int
	Style     map[string]any
	Locks     []LockEntry
	Canon     Canon
	UpdatedAt *time.Time

	// Extra keeps unknown top-level keys so a round trip through Parse and
	// json.Marshal does not lose content written by other tools.
	Extra map[string]json.RawMessage
}

// Canon groups canonical entities.
type Canon struct {
	Entities []EntityEntry
	Extra    map[string]json.RawMessage
}

// LockEntry is a source term with a fixed target rendering.
type LockEntry struct {
	Src             string
	Dst             string
	Reason          string
	Count           int
	LastSeenChapter int
	Conflicts       []Conflict
	Extra           map[string]json.RawMessage
}

// EntityEntry is a canonical named entity. Entries are unique per (Type, Src).
type EntityEntry struct {
	Type            string
	Src             string
	Dst             string
	Count           int
	LastSeenChapter int
	Conflicts       []Conflict
	Extra           map[string]json.RawMessage
}

// Conflict records a rejected rendering proposed for an already stored term.
type Conflict struct {
	Dst       string `json:"dst"`
	Reason    string `json:"reason,omitempty"`
	ChapterNo int    `json:"chapter_no"`
	At        string `json:"at"`
}

// New returns an empty, normalized document.
func New() Document {
	return Normalize(Document{})
}

// Normalize fills every missing top-level field with its default and keeps
// all existing content. It is total and idempotent.
func Normalize(doc Document) Document {
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	if doc.Style == nil {
		doc.Style = map[string]any{}
	}
	if doc.Locks == nil {
		doc.Locks = []LockEntry{}
	}
	if doc.Canon.Entities == nil {
		doc.Canon.Entities = []EntityEntry{}
	}
	return doc
}

// Parse decodes a stored document. It never fails: empty, null or malformed
// input yields an empty normalized document, and list items of the wrong
// shape are dropped.
func Parse(raw []byte) Document {
	doc, _ := ParseStrict(raw)
	return doc
}

// ParseStrict is Parse that also reports whether the input was unusable.
// The returned document is always valid, even when err is non-nil.
func ParseStrict(raw []byte) (Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return New(), nil
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return New(), fmt.Errorf("context document: %w", err)
	}
	return Normalize(doc), nil
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		Version: d.Version,
		Style:   cloneMap(d.Style),
		Extra:   cloneRaw(d.Extra),
		Canon: Canon{
			Extra: cloneRaw(d.Canon.Extra),
		},
	}
	if d.UpdatedAt != nil {
		t := *d.UpdatedAt
		out.UpdatedAt = &t
	}
	if d.Locks != nil {
		out.Locks = make([]LockEntry, len(d.Locks))
		for i, l := range d.Locks {
			l.Conflicts = cloneConflicts(l.Conflicts)
			l.Extra = cloneRaw(l.Extra)
			out.Locks[i] = l
		}
	}
	if d.Canon.Entities != nil {
		out.Canon.Entities = make([]EntityEntry, len(d.Canon.Entities))
		for i, e := range d.Canon.Entities {
			e.Conflicts = cloneConflicts(e.Conflicts)
			e.Extra = cloneRaw(e.Extra)
			out.Canon.Entities[i] = e
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

var documentKeys = map[string]bool{
	"version": true, "style": true, "locks": true, "canon": true, "updated_at": true,
}

// UnmarshalJSON decodes a document leniently. Fields of an unexpected type
// fall back to their defaults instead of failing the whole document.
func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*d = Document{}
	if raw, ok := fields["version"]; ok {
		if v, ok := asInt(decodeAny(raw)); ok {
			d.Version = v
		}
	}
	if raw, ok := fields["style"]; ok {
		if m, ok := decodeAny(raw).(map[string]any); ok {
			d.Style = m
		}
	}
	if raw, ok := fields["locks"]; ok {
		d.Locks = decodeList[LockEntry](raw)
	}
	if raw, ok := fields["canon"]; ok && isObject(raw) {
		var canon Canon
		if err := json.Unmarshal(raw, &canon); err == nil {
			d.Canon = canon
		}
	}
	if raw, ok := fields["updated_at"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				d.UpdatedAt = &t
			}
		}
	}

	for k, v := range fields {
		if documentKeys[k] {
			continue
		}
		if d.Extra == nil {
			d.Extra = make(map[string]json.RawMessage)
		}
		d.Extra[k] = v
	}
	return nil
}

// MarshalJSON encodes the document in its canonical stored shape.
func (d Document) MarshalJSON() ([]byte, error) {
	n := Normalize(d)
	out := make(map[string]any, len(n.Extra)+5)
	for k, v := range n.Extra {
		out[k] = v
	}
	out["version"] = n.Version
	out["style"] = n.Style
	out["locks"] = n.Locks
	out["canon"] = n.Canon
	if n.UpdatedAt != nil {
		out["updated_at"] = n.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the canon object.
func (c *Canon) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = Canon{}
	for k, v := range fields {
		if k == "entities" {
			c.Entities = decodeList[EntityEntry](v)
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]json.RawMessage)
		}
		c.Extra[k] = v
	}
	return nil
}

// MarshalJSON encodes the canon object.
func (c Canon) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+1)
	for k, v := range c.Extra {
		out[k] = v
	}
	entities := c.Entities
	if entities == nil {
		entities = []EntityEntry{}
	}
	out["entities"] = entities
	return json.Marshal(out)
}

var lockKeys = map[string]bool{
	"src": true, "dst": true, "reason": true, "count": true, "last_seen_chapter": true, "conflicts": true,
}

// UnmarshalJSON decodes a lock entry, coercing loosely typed counters.
func (e *LockEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*e = LockEntry{
		Src:             stringField(fields, "src"),
		Dst:             stringField(fields, "dst"),
		Reason:          stringField(fields, "reason"),
		Count:           intField(fields, "count"),
		LastSeenChapter: intField(fields, "last_seen_chapter"),
		Conflicts:       conflictsField(fields),
		Extra:           extraFields(fields, lockKeys),
	}
	return nil
}

// MarshalJSON encodes a lock entry.
func (e LockEntry) MarshalJSON() ([]byte, error) {
	out := rawToAny(e.Extra)
	out["src"] = e.Src
	out["dst"] = e.Dst
	out["reason"] = e.Reason
	out["count"] = e.Count
	out["last_seen_chapter"] = e.LastSeenChapter
	if len(e.Conflicts) > 0 {
		out["conflicts"] = e.Conflicts
	}
	return json.Marshal(out)
}

var entityKeys = map[string]bool{
	"type": true, "src": true, "dst": true, "count": true, "last_seen_chapter": true, "conflicts": true,
}

// UnmarshalJSON decodes an entity entry, coercing loosely typed counters.
func (e *EntityEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*e = EntityEntry{
		Type:            stringField(fields, "type"),
		Src:             stringField(fields, "src"),
		Dst:             stringField(fields, "dst"),
		Count:           intField(fields, "count"),
		LastSeenChapter: intField(fields, "last_seen_chapter"),
		Conflicts:       conflictsField(fields),
		Extra:           extraFields(fields, entityKeys),
	}
	return nil
}

// MarshalJSON encodes an entity entry.
func (e EntityEntry) MarshalJSON() ([]byte, error) {
	out := rawToAny(e.Extra)
	out["type"] = e.Type
	out["src"] = e.Src
	out["dst"] = e.Dst
	out["count"] = e.Count
	out["last_seen_chapter"] = e.LastSeenChapter
	if len(e.Conflicts) > 0 {
		out["conflicts"] = e.Conflicts
	}
	return json.Marshal(out)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// decodeList decodes a JSON array keeping only the object items that decode.
func decodeList[T any](raw json.RawMessage) []T {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !isObject(item) {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func decodeAny(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(fields map[string]json.RawMessage, key string) int {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	v, _ := asInt(decodeAny(raw))
	return v
}

func conflictsField(fields map[string]json.RawMessage) []Conflict {
	raw, ok := fields["conflicts"]
	if !ok {
		return nil
	}
	items := decodeList[map[string]any](raw)
	if len(items) == 0 {
		return nil
	}
	out := make([]Conflict, 0, len(items))
	for _, m := range items {
		c := Conflict{}
		c.Dst, _ = m["dst"].(string)
		c.Reason, _ = m["reason"].(string)
		c.ChapterNo, _ = asInt(m["chapter_no"])
		c.At, _ = m["at"].(string)
		out = append(out, c)
	}
	return out
}

func extraFields(fields map[string]json.RawMessage, known map[string]bool) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for k, v := range fields {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = v
	}
	return extra
}

func rawToAny(raw map[string]json.RawMessage) map[string]any {
	out := make(map[string]any, len(raw)+6)
	for k, v := range raw {
		out[k] = v
	}
	return out
}

// asInt converts a decoded JSON value to int. Numeric strings are accepted.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		var i int
		if _, err := fmt.Sscan(n, &i); err == nil {
			return i, true
		}
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func cloneConflicts(c []Conflict) []Conflict {
	if c == nil {
		return nil
	}
	out := make([]Conflict, len(c))
	copy(out, c)
	return out
}

func cloneRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
