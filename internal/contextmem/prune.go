package contextmem

import "slices"

// PruneOptions bounds the stored document.
type PruneOptions struct {
	KeepRecentWindow int
	MinCountKeep     int
	MaxLocks         int
	MaxEntities      int
}

// DefaultPruneOptions returns the default pruning limits.
func DefaultPruneOptions() PruneOptions {
	return PruneOptions{
		KeepRecentWindow: 200,
		MinCountKeep:     2,
		MaxLocks:         1000,
		MaxEntities:      1500,
	}
}

// PruneReport counts what a prune removed.
type PruneReport struct {
	DroppedLocks    int
	DroppedEntities int
}

// Dropped returns the total number of removed entries.
func (r PruneReport) Dropped() int {
	return r.DroppedLocks + r.DroppedEntities
}

// Prune removes stale, rarely confirmed entries and caps the document size.
//
// An entry survives when it was confirmed at least MinCountKeep times or was
// last seen within KeepRecentWindow chapters of currentChapterNo. Survivors
// are ordered by (count, last seen chapter) descending, ties keeping
// document order, and truncated to MaxLocks and MaxEntities. Style, version
// and unknown keys are left untouched.
func Prune(doc Document, currentChapterNo int, opts PruneOptions) (Document, PruneReport) {
	doc = Normalize(doc.Clone())

	locks := pruneEntries(doc.Locks, currentChapterNo, opts, opts.MaxLocks)
	entities := pruneEntries(doc.Canon.Entities, currentChapterNo, opts, opts.MaxEntities)

	report := PruneReport{
		DroppedLocks:    len(doc.Locks) - len(locks),
		DroppedEntities: len(doc.Canon.Entities) - len(entities),
	}
	doc.Locks = locks
	doc.Canon.Entities = entities
	return doc, report
}

func pruneEntries[T rankable](entries []T, current int, opts PruneOptions, limit int) []T {
	kept := make([]T, 0, len(entries))
	for _, e := range entries {
		s := e.stats()
		if s.count >= opts.MinCountKeep || current-s.lastSeen <= opts.KeepRecentWindow {
			kept = append(kept, e)
		}
	}

	slices.SortStableFunc(kept, func(a, b T) int {
		sa, sb := a.stats(), b.stats()
		if sa.count != sb.count {
			return sb.count - sa.count
		}
		return sb.lastSeen - sa.lastSeen
	})

	if limit < 0 {
		limit = 0
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
