// Package reader implements reading progress and bookmark persistence.
package reader

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Repo provides reader state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reader repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type progressRow struct {
	NovelID          int64     `db:"novel_id"`
	CurrentChapterID *int64    `db:"current_chapter_id"`
	Position         float64   `db:"position"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r progressRow) toDomain() *domain.ReadingProgress {
	return &domain.ReadingProgress{
		NovelID:          r.NovelID,
		CurrentChapterID: r.CurrentChapterID,
		Position:         r.Position,
		UpdatedAt:        r.UpdatedAt,
	}
}

type bookmarkRow struct {
	ID        int64     `db:"id"`
	ChapterID int64     `db:"chapter_id"`
	Location  int       `db:"location"`
	Label     *string   `db:"label"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func (r bookmarkRow) toDomain() *domain.Bookmark {
	return &domain.Bookmark{
		ID:        r.ID,
		ChapterID: r.ChapterID,
		Location:  r.Location,
		Label:     r.Label,
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

const (
	progressColumns = "novel_id, current_chapter_id, position, updated_at"
	bookmarkColumns = "id, chapter_id, location, label, note, created_at"
)

// ---------------------------------------------------------------------------
// Reading progress
// ---------------------------------------------------------------------------

// GetProgress returns the reading progress of a novel.
// Returns domain.ErrNotFound if none was saved yet.
func (r *Repo) GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error) {
	query, args, err := postgres.Psql.Select(progressColumns).From("reading_progress").
		Where(sq.Eq{"novel_id": novelID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst progressRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "reading_progress", novelID)
	}
	return dst.toDomain(), nil
}

// UpsertProgress creates or replaces the reading progress of a novel.
func (r *Repo) UpsertProgress(ctx context.Context, p *domain.ReadingProgress) (*domain.ReadingProgress, error) {
	query, args, err := postgres.Psql.Insert("reading_progress").
		Columns("novel_id", "current_chapter_id", "position").
		Values(p.NovelID, p.CurrentChapterID, p.Position).
		Suffix(`ON CONFLICT (novel_id) DO UPDATE
			SET current_chapter_id = EXCLUDED.current_chapter_id,
			    position = EXCLUDED.position,
			    updated_at = now()
			RETURNING ` + progressColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst progressRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "reading_progress", p.NovelID)
	}
	return dst.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Bookmarks
// ---------------------------------------------------------------------------

// CreateBookmark inserts a bookmark.
// Returns domain.ErrNotFound if the chapter does not exist.
func (r *Repo) CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	query, args, err := postgres.Psql.Insert("bookmarks").
		Columns("chapter_id", "location", "label", "note").
		Values(b.ChapterID, b.Location, b.Label, b.Note).
		Suffix("RETURNING " + bookmarkColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst bookmarkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", b.ChapterID)
	}
	return dst.toDomain(), nil
}

// ListBookmarks returns the bookmarks of a chapter ordered by location.
func (r *Repo) ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error) {
	query, args, err := postgres.Psql.Select(bookmarkColumns).From("bookmarks").
		Where(sq.Eq{"chapter_id": chapterID}).
		OrderBy("location", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []bookmarkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	out := make([]*domain.Bookmark, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// DeleteBookmark removes a bookmark.
func (r *Repo) DeleteBookmark(ctx context.Context, id int64) error {
	query, args, err := postgres.Psql.Delete("bookmarks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "bookmark", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bookmark %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
