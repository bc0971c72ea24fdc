// Package translation orchestrates chapter translation with the novel's
// context memory: slice the stored document, call the translation backend,
// validate its answer, then merge, prune and persist in one transaction.
package translation

import (
	"context"
	"log/slog"
	"time"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/provider"
)

type novelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
	GetContextForUpdate(ctx context.Context, id int64) (contextmem.Document, error)
	UpdateContext(ctx context.Context, id int64, doc contextmem.Document) error
}

type chapterRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Chapter, error)
	ListRange(ctx context.Context, novelID int64, fromNo, toNo int) ([]*domain.Chapter, error)
	SaveTranslation(ctx context.Context, id int64, content string, at time.Time) (*domain.Chapter, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	TranslationFinished(outcome string)
	OracleCalled(provider string, d time.Duration, err error)
	SliceBuilt(locks, entities int)
	ContextMerged(skipped, lockConflicts, entityConflicts int)
	ContextPruned(locks, entities int)
}

// Options tune the orchestration.
type Options struct {
	Slice       contextmem.SliceOptions
	Prune       contextmem.PruneOptions
	Constraints []string
	// Timeout bounds the backend call only. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultOptions returns the default slice and prune limits and constraints.
func DefaultOptions() Options {
	return Options{
		Slice:       contextmem.DefaultSliceOptions(),
		Prune:       contextmem.DefaultPruneOptions(),
		Constraints: provider.DefaultConstraints,
	}
}

// Service translates chapters.
type Service struct {
	log        *slog.Logger
	novels     novelRepo
	chapters   chapterRepo
	tx         txManager
	translator provider.Translator
	metrics    recorder
	opts       Options
	locks      *keyedMutex
	now        func() time.Time
}

// NewService creates a translation service. A nil rec disables metrics.
func NewService(
	log *slog.Logger,
	novels novelRepo,
	chapters chapterRepo,
	tx txManager,
	translator provider.Translator,
	rec recorder,
	opts Options,
) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	if len(opts.Constraints) == 0 {
		opts.Constraints = provider.DefaultConstraints
	}
	return &Service{
		log:        log.With("service", "translation"),
		novels:     novels,
		chapters:   chapters,
		tx:         tx,
		translator: translator,
		metrics:    rec,
		opts:       opts,
		locks:      newKeyedMutex(),
		now:        time.Now,
	}
}

type nopRecorder struct{}

func (nopRecorder) TranslationFinished(string)                {}
func (nopRecorder) OracleCalled(string, time.Duration, error) {}
func (nopRecorder) SliceBuilt(int, int)                       {}
func (nopRecorder) ContextMerged(int, int, int)               {}
func (nopRecorder) ContextPruned(int, int)                    {}
