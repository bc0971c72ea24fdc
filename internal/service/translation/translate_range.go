package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// RangeItem is the outcome for one chapter of a range translation.
type RangeItem struct {
	ChapterID int64
	ChapterNo int
	Result    *Result
	Err       error
}

// RangeResult summarizes a range translation.
type RangeResult struct {
	Items      []RangeItem
	Translated int
	Failed     int
	Skipped    int
}

// TranslateRange translates chapters of a novel in ascending chapter_no
// order, one at a time, so every chapter sees the context merged from the
// chapters before it. Chapters without raw text are skipped. With
// StopOnError the first failure ends the run and is returned.
func (s *Service) TranslateRange(ctx context.Context, input TranslateRangeInput) (*RangeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}

	chapters, err := s.chapters.ListRange(ctx, input.NovelID, input.FromNo, input.ToNo)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	out := &RangeResult{Items: make([]RangeItem, 0, len(chapters))}
	for _, ch := range chapters {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if domain.IsBlank(ch.RawText()) {
			out.Skipped++
			continue
		}

		res, err := s.TranslateChapter(ctx, TranslateChapterInput{NovelID: input.NovelID, ChapterID: ch.ID})
		out.Items = append(out.Items, RangeItem{ChapterID: ch.ID, ChapterNo: ch.ChapterNo, Result: res, Err: err})
		if err != nil {
			out.Failed++
			if input.StopOnError {
				return out, fmt.Errorf("chapter %d: %w", ch.ChapterNo, err)
			}
			continue
		}
		out.Translated++
	}

	s.log.InfoContext(ctx, "range translated",
		slog.Int64("novel_id", input.NovelID),
		slog.Int("translated", out.Translated),
		slog.Int("failed", out.Failed),
		slog.Int("skipped", out.Skipped),
	)
	return out, nil
}
