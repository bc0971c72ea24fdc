package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/metrics"
	"github.com/asonkiya/novel-chrome-extension/internal/provider"
)

// Orchestration states, logged with every transition.
const (
	stateLoading    = "LOADING"
	stateSlicing    = "SLICING"
	stateInvoking   = "INVOKING"
	stateValidating = "VALIDATING"
	stateMerging    = "MERGING"
	statePruning    = "PRUNING"
	statePersisted  = "PERSISTED"
	stateFailed     = "FAILED"
)

// Result describes a finished chapter translation.
type Result struct {
	Chapter        *domain.Chapter
	SliceLocks     int
	SliceEntities  int
	SkippedUpdates int
	Pruned         contextmem.PruneReport
}

// TranslateChapter translates the raw text of one chapter and folds the
// backend's context updates into the novel's stored context memory.
//
// Backend errors, malformed answers, missing records and blank raw text all
// abort before anything is written. The chapter content and the merged and
// pruned context are stored in the same transaction.
func (s *Service) TranslateChapter(ctx context.Context, input TranslateChapterInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	log := s.log.With(slog.Int64("chapter_id", input.ChapterID))
	state := stateLoading
	s.enter(ctx, log, state)

	ch, novel, err := s.load(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, log, state, err)
	}
	log = log.With(slog.Int64("novel_id", novel.ID), slog.Int("chapter_no", ch.ChapterNo))

	state = stateSlicing
	s.enter(ctx, log, state)
	slice := contextmem.BuildSlice(contextmem.Normalize(novel.Context), ch.ChapterNo, ch.RawText(), s.opts.Slice)
	sliceLocks, sliceEntities := slice.Size()
	s.metrics.SliceBuilt(sliceLocks, sliceEntities)

	state = stateInvoking
	s.enter(ctx, log, state, slog.Int("slice_locks", sliceLocks), slog.Int("slice_entities", sliceEntities))
	raw, err := s.invoke(ctx, provider.TranslationRequest{
		NovelID:       novel.ID,
		SourceLang:    novel.SourceLang,
		TargetLang:    novel.TargetLang,
		Text:          ch.RawText(),
		ContextMemory: slice,
		Constraints:   s.opts.Constraints,
	})
	if err != nil {
		return nil, s.fail(ctx, log, state, err)
	}

	state = stateValidating
	s.enter(ctx, log, state)
	resp, err := ParseResponse(raw)
	if err != nil {
		return nil, s.fail(ctx, log, state, err)
	}

	result := &Result{
		SliceLocks:     sliceLocks,
		SliceEntities:  sliceEntities,
		SkippedUpdates: resp.Updates.Skipped,
	}

	unlock := s.locks.Lock(novel.ID)
	defer unlock()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		state = stateMerging
		s.enter(ctx, log, state)
		stored, err := s.novels.GetContextForUpdate(ctx, novel.ID)
		if err != nil {
			return fmt.Errorf("lock novel context: %w", err)
		}
		merged := contextmem.Merger{Now: s.now}.Merge(stored, resp.Updates, ch.ChapterNo)
		lockConflicts, entityConflicts := newConflicts(stored, merged)
		s.metrics.ContextMerged(resp.Updates.Skipped, lockConflicts, entityConflicts)

		state = statePruning
		s.enter(ctx, log, state)
		pruned, report := contextmem.Prune(merged, ch.ChapterNo, s.opts.Prune)
		result.Pruned = report

		saved, err := s.chapters.SaveTranslation(ctx, ch.ID, resp.Translation, s.now().UTC())
		if err != nil {
			return fmt.Errorf("save translation: %w", err)
		}
		if err := s.novels.UpdateContext(ctx, novel.ID, pruned); err != nil {
			return fmt.Errorf("save context: %w", err)
		}
		result.Chapter = saved
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, log, state, err)
	}

	s.metrics.ContextPruned(result.Pruned.DroppedLocks, result.Pruned.DroppedEntities)
	s.metrics.TranslationFinished(metrics.OutcomeSuccess)
	log.InfoContext(ctx, "chapter translated",
		slog.String("state", statePersisted),
		slog.Int("skipped_updates", result.SkippedUpdates),
		slog.Int("pruned", result.Pruned.Dropped()),
	)
	return result, nil
}

func (s *Service) load(ctx context.Context, input TranslateChapterInput) (*domain.Chapter, *domain.Novel, error) {
	ch, err := s.chapters.GetByID(ctx, input.ChapterID)
	if err != nil {
		return nil, nil, fmt.Errorf("get chapter: %w", err)
	}
	if input.NovelID != 0 && ch.NovelID != input.NovelID {
		return nil, nil, fmt.Errorf("chapter %d of novel %d: %w", ch.ID, input.NovelID, domain.ErrNotFound)
	}
	novel, err := s.novels.GetByID(ctx, ch.NovelID)
	if err != nil {
		return nil, nil, fmt.Errorf("get novel: %w", err)
	}
	if domain.IsBlank(ch.RawText()) {
		return nil, nil, fmt.Errorf("chapter %d has no raw text: %w", ch.ID, domain.ErrInvalidState)
	}
	return ch, novel, nil
}

func (s *Service) invoke(ctx context.Context, req provider.TranslationRequest) ([]byte, error) {
	callCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.translator.Translate(callCtx, req)
	s.metrics.OracleCalled(s.translator.Name(), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrOracleFailure, s.translator.Name(), err)
	}
	return raw, nil
}

func (s *Service) enter(ctx context.Context, log *slog.Logger, state string, attrs ...any) {
	log.DebugContext(ctx, "translation state", append([]any{slog.String("state", state)}, attrs...)...)
}

func (s *Service) fail(ctx context.Context, log *slog.Logger, state string, err error) error {
	outcome := outcomeOf(err)
	s.metrics.TranslationFinished(outcome)
	log.ErrorContext(ctx, "chapter translation failed",
		slog.String("state", stateFailed),
		slog.String("failed_state", state),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()),
	)
	return err
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return metrics.OutcomeInvalidState
	case errors.Is(err, domain.ErrOracleFailure):
		return metrics.OutcomeOracleFailure
	case errors.Is(err, domain.ErrInvalidResponse):
		return metrics.OutcomeInvalidResponse
	default:
		return metrics.OutcomeError
	}
}

// newConflicts counts conflict records added by a merge.
func newConflicts(before, after contextmem.Document) (locks, entities int) {
	for _, l := range after.Locks {
		locks += len(l.Conflicts)
	}
	for _, l := range before.Locks {
		locks -= len(l.Conflicts)
	}
	for _, e := range after.Canon.Entities {
		entities += len(e.Conflicts)
	}
	for _, e := range before.Canon.Entities {
		entities -= len(e.Conflicts)
	}
	return locks, entities
}
