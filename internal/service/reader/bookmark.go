package reader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// AddBookmark bookmarks a location inside a chapter.
func (s *Service) AddBookmark(ctx context.Context, input AddBookmarkInput) (*domain.Bookmark, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.reader.CreateBookmark(ctx, &domain.Bookmark{
		ChapterID: input.ChapterID,
		Location:  input.Location,
		Label:     input.Label,
		Note:      input.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("create bookmark: %w", err)
	}

	s.log.InfoContext(ctx, "bookmark added",
		slog.Int64("bookmark_id", b.ID),
		slog.Int64("chapter_id", b.ChapterID),
	)
	return b, nil
}

// ListBookmarks returns the bookmarks of a chapter.
func (s *Service) ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error) {
	if _, err := s.chapters.GetByID(ctx, chapterID); err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}

	bookmarks, err := s.reader.ListBookmarks(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// DeleteBookmark removes a bookmark.
func (s *Service) DeleteBookmark(ctx context.Context, id int64) error {
	if err := s.reader.DeleteBookmark(ctx, id); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}
