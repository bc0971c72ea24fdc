package chapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Create stores a chapter and links it between its chapter_no neighbours.
// Returns domain.ErrAlreadyExists if the chapter number is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Chapter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
			return fmt.Errorf("get novel: %w", err)
		}

		ch, err := s.chapters.Create(ctx, &domain.Chapter{
			NovelID:   input.NovelID,
			ChapterNo: input.ChapterNo,
			Title:     input.Title,
			Raw:       input.Raw,
			Content:   input.Content,
			SourceURL: input.SourceURL,
			Status:    domain.StatusFor(input.Content),
		})
		if err != nil {
			return fmt.Errorf("create chapter: %w", err)
		}

		if err := s.link(ctx, ch); err != nil {
			return err
		}
		created = ch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chapter created",
		slog.Int64("novel_id", created.NovelID),
		slog.Int64("chapter_id", created.ID),
		slog.Int("chapter_no", created.ChapterNo),
	)
	return created, nil
}

// link inserts ch into the list of its novel. ch must already be stored.
func (s *Service) link(ctx context.Context, ch *domain.Chapter) error {
	prev, next, err := s.chapters.FindNeighbors(ctx, ch.NovelID, ch.ChapterNo)
	if err != nil {
		return fmt.Errorf("find neighbors: %w", err)
	}

	ch.PrevChapterID, ch.NextChapterID = nil, nil
	if prev != nil {
		ch.PrevChapterID = &prev.ID
	}
	if next != nil {
		ch.NextChapterID = &next.ID
	}
	if err := s.chapters.SetLinks(ctx, ch.ID, ch.PrevChapterID, ch.NextChapterID); err != nil {
		return fmt.Errorf("link chapter: %w", err)
	}
	if prev != nil {
		if err := s.chapters.SetNext(ctx, prev.ID, &ch.ID); err != nil {
			return fmt.Errorf("link prev: %w", err)
		}
	}
	if next != nil {
		if err := s.chapters.SetPrev(ctx, next.ID, &ch.ID); err != nil {
			return fmt.Errorf("link next: %w", err)
		}
	}
	return nil
}

// Get returns a chapter by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Chapter, error) {
	ch, err := s.chapters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}
	return ch, nil
}

// GetByNo returns the chapter of a novel with the given number.
func (s *Service) GetByNo(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error) {
	if _, err := s.novels.GetByID(ctx, novelID); err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}
	ch, err := s.chapters.GetByNo(ctx, novelID, chapterNo)
	if err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}
	return ch, nil
}

// List returns a page of chapters ordered by chapter_no and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Chapter, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	if _, err := s.novels.GetByID(ctx, input.NovelID); err != nil {
		return nil, 0, fmt.Errorf("get novel: %w", err)
	}
	chapters, total, err := s.chapters.List(ctx, input.NovelID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list chapters: %w", err)
	}
	return chapters, total, nil
}

// Update applies a partial update. The status is only changed when given.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Chapter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ch, err := s.chapters.GetByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("get chapter: %w", err)
		}
		if input.Title != nil {
			ch.Title = input.Title
		}
		if input.Raw != nil {
			ch.Raw = input.Raw
		}
		if input.Content != nil {
			ch.Content = input.Content
		}
		if input.SourceURL != nil {
			ch.SourceURL = input.SourceURL
		}
		if input.Status != nil {
			ch.Status = *input.Status
		}

		updated, err = s.chapters.Update(ctx, ch)
		if err != nil {
			return fmt.Errorf("update chapter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
