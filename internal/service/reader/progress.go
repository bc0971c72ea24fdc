package reader

import (
	"context"
	"errors"
	"fmt"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// GetProgress returns the reading progress of a novel. A novel that was
// never opened reports position 0 and no current chapter.
func (s *Service) GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error) {
	if _, err := s.novels.GetByID(ctx, novelID); err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}

	p, err := s.reader.GetProgress(ctx, novelID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ReadingProgress{NovelID: novelID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// SaveProgress stores the reading position of a novel. The current chapter,
// when given, must belong to the novel.
func (s *Service) SaveProgress(ctx context.Context, input SaveProgressInput) (*domain.ReadingProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}
	if input.CurrentChapterID != nil {
		ch, err := s.chapters.GetByID(ctx, *input.CurrentChapterID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && ch.NovelID != input.NovelID) {
			return nil, domain.NewValidationError("current_chapter_id", "not a chapter of this novel")
		}
		if err != nil {
			return nil, fmt.Errorf("get chapter: %w", err)
		}
	}

	p, err := s.reader.UpsertProgress(ctx, &domain.ReadingProgress{
		NovelID:          input.NovelID,
		CurrentChapterID: input.CurrentChapterID,
		Position:         input.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return p, nil
}
