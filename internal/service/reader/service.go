// Package reader tracks where the reader is in a novel and their bookmarks.
package reader

import (
	"context"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

type readerRepo interface {
	GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error)
	UpsertProgress(ctx context.Context, p *domain.ReadingProgress) (*domain.ReadingProgress, error)
	CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error
}

type novelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
}

type chapterRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Chapter, error)
}

// Service provides reading progress and bookmark operations.
type Service struct {
	reader   readerRepo
	novels   novelRepo
	chapters chapterRepo
	log      *slog.Logger
}

// NewService creates a new reader service.
func NewService(log *slog.Logger, reader readerRepo, novels novelRepo, chapters chapterRepo) *Service {
	return &Service{
		reader:   reader,
		novels:   novels,
		chapters: chapters,
		log:      log.With("service", "reader"),
	}
}
