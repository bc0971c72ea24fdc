package contextmem

import (
	"time"
)

// Merger applies Updates onto a document. The zero value is ready to use.
type Merger struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Merge applies updates using the wall clock. See Merger.Merge.
func Merge(existing Document, updates Updates, chapterNo int) Document {
	return Merger{}.Merge(existing, updates, chapterNo)
}

// Merge returns a copy of existing with updates applied for chapterNo.
//
// A proposal for a new key is appended with Count 1. A proposal repeating
// the stored rendering increments Count. A proposal with a different
// rendering never replaces the stored one; it is appended to Conflicts.
// In every case LastSeenChapter becomes chapterNo. UpdatedAt is always set,
// even for empty updates.
func (m Merger) Merge(existing Document, updates Updates, chapterNo int) Document {
	now := m.now().UTC()
	at := now.Format(time.RFC3339Nano)
	doc := Normalize(existing.Clone())

	lockIdx := make(map[string]int, len(doc.Locks))
	for i, l := range doc.Locks {
		if _, dup := lockIdx[l.Src]; !dup {
			lockIdx[l.Src] = i
		}
	}
	for _, p := range updates.Locks {
		i, ok := lockIdx[p.Src]
		if !ok {
			lockIdx[p.Src] = len(doc.Locks)
			doc.Locks = append(doc.Locks, LockEntry{
				Src:             p.Src,
				Dst:             p.Dst,
				Reason:          p.Reason,
				Count:           1,
				LastSeenChapter: chapterNo,
			})
			continue
		}
		entry := &doc.Locks[i]
		if entry.Dst == p.Dst {
			entry.Count = confirmed(entry.Count)
		} else {
			entry.Conflicts = append(entry.Conflicts, Conflict{
				Dst:       p.Dst,
				Reason:    p.Reason,
				ChapterNo: chapterNo,
				At:        at,
			})
		}
		entry.LastSeenChapter = chapterNo
	}

	entityIdx := make(map[entityKey]int, len(doc.Canon.Entities))
	for i, e := range doc.Canon.Entities {
		k := entityKey{typ: e.Type, src: e.Src}
		if _, dup := entityIdx[k]; !dup {
			entityIdx[k] = i
		}
	}
	for _, p := range updates.Entities {
		k := entityKey{typ: p.Type, src: p.Src}
		i, ok := entityIdx[k]
		if !ok {
			entityIdx[k] = len(doc.Canon.Entities)
			doc.Canon.Entities = append(doc.Canon.Entities, EntityEntry{
				Type:            p.Type,
				Src:             p.Src,
				Dst:             p.Dst,
				Count:           1,
				LastSeenChapter: chapterNo,
			})
			continue
		}
		entry := &doc.Canon.Entities[i]
		if entry.Dst == p.Dst {
			entry.Count = confirmed(entry.Count)
		} else {
			entry.Conflicts = append(entry.Conflicts, Conflict{
				Dst:       p.Dst,
				ChapterNo: chapterNo,
				At:        at,
			})
		}
		entry.LastSeenChapter = chapterNo
	}

	if updates.StylePatch != nil {
		deepMerge(doc.Style, cloneMap(updates.StylePatch))
	}

	doc.UpdatedAt = &now
	return doc
}

func (m Merger) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

type entityKey struct {
	typ string
	src string
}

// confirmed returns the count after one more confirmation. Entries stored
// without a count are treated as confirmed once.
func confirmed(count int) int {
	if count < 1 {
		count = 1
	}
	return count + 1
}

// deepMerge merges patch into dst. Nested objects present on both sides are
// merged recursively; any other patch value replaces the existing one.
func deepMerge(dst, patch map[string]any) {
	for k, v := range patch {
		pv, pIsMap := v.(map[string]any)
		dv, dIsMap := dst[k].(map[string]any)
		if pIsMap && dIsMap {
			deepMerge(dv, pv)
			continue
		}
		dst[k] = v
	}
}
