// Package chapter manages the chapters of a novel and keeps their prev/next
// links consistent with chapter_no ordering.
package chapter

import (
	"context"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

const (
	DefaultLimit = 500
	MaxLimit     = 5000
)

type chapterRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Chapter, error)
	GetByNo(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error)
	List(ctx context.Context, novelID int64, limit, offset int) ([]*domain.Chapter, int, error)
	ListLinks(ctx context.Context, novelID int64) ([]domain.ChapterLink, error)
	FindNeighbors(ctx context.Context, novelID int64, chapterNo int) (prev, next *domain.ChapterLink, err error)
	Create(ctx context.Context, ch *domain.Chapter) (*domain.Chapter, error)
	Update(ctx context.Context, ch *domain.Chapter) (*domain.Chapter, error)
	UpdateContent(ctx context.Context, id int64, content string) (*domain.Chapter, error)
	SetLinks(ctx context.Context, id int64, prevID, nextID *int64) error
	SetPrev(ctx context.Context, id int64, prevID *int64) error
	SetNext(ctx context.Context, id int64, nextID *int64) error
	SetLinksMany(ctx context.Context, links []domain.ChapterLinks) error
	Delete(ctx context.Context, id int64) error
	DeleteByNovel(ctx context.Context, novelID int64) (int, error)
	DeleteByNoRange(ctx context.Context, novelID int64, start, end int) (int, error)
}

type novelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// pageSource turns a chapter page into readable text.
type pageSource interface {
	Fetch(ctx context.Context, pageURL string) (*domain.WebPage, error)
	Extract(html []byte, pageURL string) (*domain.WebPage, error)
}

// Service provides chapter operations.
type Service struct {
	chapters chapterRepo
	novels   novelRepo
	tx       txManager
	pages    pageSource
	log      *slog.Logger
}

// NewService creates a new chapter service.
func NewService(log *slog.Logger, chapters chapterRepo, novels novelRepo, tx txManager, pages pageSource) *Service {
	return &Service{
		chapters: chapters,
		novels:   novels,
		tx:       tx,
		pages:    pages,
		log:      log.With("service", "chapter"),
	}
}
