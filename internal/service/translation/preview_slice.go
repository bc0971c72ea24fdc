package translation

import (
	"context"
	"fmt"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// PreviewSlice returns the context slice that the next translation of a
// chapter would send. Nothing is called or written.
func (s *Service) PreviewSlice(ctx context.Context, input TranslateChapterInput) (contextmem.Slice, error) {
	if err := input.Validate(); err != nil {
		return contextmem.Slice{}, err
	}

	ch, err := s.chapters.GetByID(ctx, input.ChapterID)
	if err != nil {
		return contextmem.Slice{}, fmt.Errorf("get chapter: %w", err)
	}
	if input.NovelID != 0 && ch.NovelID != input.NovelID {
		return contextmem.Slice{}, fmt.Errorf("chapter %d of novel %d: %w", ch.ID, input.NovelID, domain.ErrNotFound)
	}
	novel, err := s.novels.GetByID(ctx, ch.NovelID)
	if err != nil {
		return contextmem.Slice{}, fmt.Errorf("get novel: %w", err)
	}

	return contextmem.BuildSlice(contextmem.Normalize(novel.Context), ch.ChapterNo, ch.RawText(), s.opts.Slice), nil
}
