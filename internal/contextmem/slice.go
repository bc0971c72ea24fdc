package contextmem

import (
	"slices"
	"strings"
)

// SliceOptions bounds the slice sent along with a chapter.
type SliceOptions struct {
	RecentWindow int
	MinCount     int
	MaxLocks     int
	MaxEntities  int
}

// DefaultSliceOptions returns the default slice limits.
func DefaultSliceOptions() SliceOptions {
	return SliceOptions{
		RecentWindow: 50,
		MinCount:     3,
		MaxLocks:     200,
		MaxEntities:  300,
	}
}

// Slice is the bounded subset of a document relevant to one chapter. It is
// never persisted.
type Slice struct {
	Version int            `json:"version"`
	Style   map[string]any `json:"style"`
	Locks   []LockEntry    `json:"locks"`
	Canon   SliceCanon     `json:"canon"`
}

// SliceCanon holds the selected entities.
type SliceCanon struct {
	Entities []EntityEntry `json:"entities"`
}

// Size returns the number of locks and entities in the slice.
func (s Slice) Size() (locks, entities int) {
	return len(s.Locks), len(s.Canon.Entities)
}

// BuildSlice selects the entries of doc worth sending with chapterNo.
//
// An entry is eligible when its source term occurs in rawText, when it was
// confirmed at least MinCount times, or when it was last seen within
// RecentWindow chapters. Eligible entries are ranked by (occurs in text,
// recency, count) descending, ties keeping document order, and truncated to
// MaxLocks and MaxEntities. Style is copied whole.
func BuildSlice(doc Document, chapterNo int, rawText string, opts SliceOptions) Slice {
	doc = Normalize(doc)
	return Slice{
		Version: doc.Version,
		Style:   cloneMap(doc.Style),
		Locks:   selectEntries(doc.Locks, chapterNo, rawText, opts, opts.MaxLocks),
		Canon: SliceCanon{
			Entities: selectEntries(doc.Canon.Entities, chapterNo, rawText, opts, opts.MaxEntities),
		},
	}
}

// entryStats is the part of an entry the slice and prune rankings look at.
type entryStats struct {
	src      string
	count    int
	lastSeen int
}

type rankable interface {
	stats() entryStats
}

func (e LockEntry) stats() entryStats {
	return entryStats{src: e.Src, count: e.Count, lastSeen: e.LastSeenChapter}
}

func (e EntityEntry) stats() entryStats {
	return entryStats{src: e.Src, count: e.Count, lastSeen: e.LastSeenChapter}
}

type sliceCandidate[T rankable] struct {
	entry   T
	match   bool
	recency int
	count   int
}

func selectEntries[T rankable](entries []T, chapterNo int, rawText string, opts SliceOptions, limit int) []T {
	candidates := make([]sliceCandidate[T], 0, len(entries))
	for _, e := range entries {
		s := e.stats()
		match := s.src != "" && strings.Contains(rawText, s.src)
		age := chapterNo - s.lastSeen
		if !match && s.count < opts.MinCount && age > opts.RecentWindow {
			continue
		}
		candidates = append(candidates, sliceCandidate[T]{
			entry:   e,
			match:   match,
			recency: max(0, opts.RecentWindow-age),
			count:   s.count,
		})
	}

	slices.SortStableFunc(candidates, func(a, b sliceCandidate[T]) int {
		if a.match != b.match {
			if a.match {
				return -1
			}
			return 1
		}
		if a.recency != b.recency {
			return b.recency - a.recency
		}
		return b.count - a.count
	})

	if limit < 0 {
		limit = 0
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]T, len(candidates))
	for i, c := range candidates {
		out[i] = c.entry
	}
	return out
}
