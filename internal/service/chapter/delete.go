package chapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Delete removes a chapter and joins its neighbours to each other.
// Returns the deleted chapter.
func (s *Service) Delete(ctx context.Context, input DeleteInput) (*domain.Chapter, error) {
	var deleted *domain.Chapter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.NovelID != 0 {
			if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
				return fmt.Errorf("get novel: %w", err)
			}
		}

		ch, err := s.chapters.GetByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("get chapter: %w", err)
		}
		if input.NovelID != 0 && ch.NovelID != input.NovelID {
			return fmt.Errorf("chapter %d of novel %d: %w", input.ID, input.NovelID, domain.ErrNotFound)
		}

		if ch.PrevChapterID != nil {
			if err := s.chapters.SetNext(ctx, *ch.PrevChapterID, ch.NextChapterID); err != nil {
				return fmt.Errorf("relink prev: %w", err)
			}
		}
		if ch.NextChapterID != nil {
			if err := s.chapters.SetPrev(ctx, *ch.NextChapterID, ch.PrevChapterID); err != nil {
				return fmt.Errorf("relink next: %w", err)
			}
		}
		if err := s.chapters.Delete(ctx, ch.ID); err != nil {
			return fmt.Errorf("delete chapter: %w", err)
		}

		if input.Rebuild {
			if _, err := s.rebuildLinks(ctx, ch.NovelID); err != nil {
				return err
			}
		}
		deleted = ch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chapter deleted",
		slog.Int64("novel_id", deleted.NovelID),
		slog.Int64("chapter_id", deleted.ID),
		slog.Int("chapter_no", deleted.ChapterNo),
		slog.Bool("rebuild", input.Rebuild),
	)
	return deleted, nil
}

// DeleteAll removes every chapter of a novel and returns how many were
// deleted.
func (s *Service) DeleteAll(ctx context.Context, novelID int64) (int, error) {
	var count int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.novels.GetByID(ctx, novelID); err != nil {
			return fmt.Errorf("get novel: %w", err)
		}
		n, err := s.chapters.DeleteByNovel(ctx, novelID)
		if err != nil {
			return fmt.Errorf("delete chapters: %w", err)
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "chapters deleted",
		slog.Int64("novel_id", novelID),
		slog.Int("count", count),
	)
	return count, nil
}

// DeleteRange removes the chapters numbered Start..End inclusive and returns
// how many were deleted together with the effective bounds.
func (s *Service) DeleteRange(ctx context.Context, input DeleteRangeInput) (count, start, end int, err error) {
	start, end = input.Start, input.End
	if start > end {
		start, end = end, start
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
			return fmt.Errorf("get novel: %w", err)
		}
		n, err := s.chapters.DeleteByNoRange(ctx, input.NovelID, start, end)
		if err != nil {
			return fmt.Errorf("delete chapters: %w", err)
		}
		if input.Rebuild {
			if _, err := s.rebuildLinks(ctx, input.NovelID); err != nil {
				return err
			}
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}

	s.log.InfoContext(ctx, "chapter range deleted",
		slog.Int64("novel_id", input.NovelID),
		slog.Int("start", start),
		slog.Int("end", end),
		slog.Int("count", count),
	)
	return count, start, end, nil
}
