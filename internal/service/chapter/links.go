package chapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// RebuildLinks recomputes the prev/next links of every chapter of a novel
// from chapter_no order and returns the number of chapters.
func (s *Service) RebuildLinks(ctx context.Context, novelID int64) (int, error) {
	var count int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.novels.GetByID(ctx, novelID); err != nil {
			return fmt.Errorf("get novel: %w", err)
		}
		n, err := s.rebuildLinks(ctx, novelID)
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "chapter links rebuilt",
		slog.Int64("novel_id", novelID),
		slog.Int("count", count),
	)
	return count, nil
}

func (s *Service) rebuildLinks(ctx context.Context, novelID int64) (int, error) {
	ordered, err := s.chapters.ListLinks(ctx, novelID)
	if err != nil {
		return 0, fmt.Errorf("list links: %w", err)
	}
	if len(ordered) == 0 {
		return 0, nil
	}
	if err := s.chapters.SetLinksMany(ctx, chainLinks(ordered)); err != nil {
		return 0, fmt.Errorf("set links: %w", err)
	}
	return len(ordered), nil
}

// chainLinks links each chapter to its neighbours in the given order.
func chainLinks(ordered []domain.ChapterLink) []domain.ChapterLinks {
	out := make([]domain.ChapterLinks, len(ordered))
	for i, ch := range ordered {
		out[i].ID = ch.ID
		if i > 0 {
			prev := ordered[i-1].ID
			out[i].PrevID = &prev
		}
		if i < len(ordered)-1 {
			next := ordered[i+1].ID
			out[i].NextID = &next
		}
	}
	return out
}
