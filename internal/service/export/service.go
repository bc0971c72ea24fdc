// Package export renders a novel with its chapters for download.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

type novelRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
}

type chapterRepo interface {
	ListAll(ctx context.Context, novelID int64) ([]*domain.Chapter, error)
}

// Service loads novels for export.
type Service struct {
	novels   novelRepo
	chapters chapterRepo
	log      *slog.Logger
}

// NewService creates a new export service.
func NewService(log *slog.Logger, novels novelRepo, chapters chapterRepo) *Service {
	return &Service{
		novels:   novels,
		chapters: chapters,
		log:      log.With("service", "export"),
	}
}

// Book is a novel with all of its chapters in chapter_no order.
type Book struct {
	Novel    *domain.Novel
	Chapters []*domain.Chapter
}

// Load returns the novel and its chapters.
func (s *Service) Load(ctx context.Context, novelID int64) (*Book, error) {
	n, err := s.novels.GetByID(ctx, novelID)
	if err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}
	chapters, err := s.chapters.ListAll(ctx, novelID)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	s.log.DebugContext(ctx, "export loaded",
		slog.Int64("novel_id", novelID),
		slog.Int("chapters", len(chapters)),
	)
	return &Book{Novel: n, Chapters: chapters}, nil
}

// Markdown renders the book with the novel name as the top heading and one
// second level heading per chapter.
func (b *Book) Markdown() string {
	parts := make([]string, 0, len(b.Chapters)+1)
	parts = append(parts, "# "+b.Novel.Name+"\n")
	for _, ch := range b.Chapters {
		parts = append(parts, "## "+strconv.Itoa(ch.ChapterNo)+". "+ch.DisplayTitle()+"\n\n"+strings.TrimSpace(ch.Text())+"\n")
	}
	return strings.Join(parts, "\n")
}

// Text renders the book as plain text.
func (b *Book) Text() string {
	parts := make([]string, 0, 3*len(b.Chapters)+2)
	parts = append(parts, b.Novel.Name, "")
	for _, ch := range b.Chapters {
		parts = append(parts,
			strconv.Itoa(ch.ChapterNo)+". "+ch.DisplayTitle(),
			strings.TrimSpace(ch.Text()),
			"",
		)
	}
	return strings.Join(parts, "\n")
}
