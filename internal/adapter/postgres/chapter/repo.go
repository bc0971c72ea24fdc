// Package chapter implements the Chapter repository using PostgreSQL.
// Besides CRUD it maintains the prev/next links that chain the chapters of
// a novel in chapter_no order.
package chapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

const table = "chapters"

var columns = []string{
	"id", "novel_id", "chapter_no", "title", "raw", "content", "source_url", "status",
	"translated_at", "prev_chapter_id", "next_chapter_id", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides chapter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chapter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            int64      `db:"id"`
	NovelID       int64      `db:"novel_id"`
	ChapterNo     int        `db:"chapter_no"`
	Title         *string    `db:"title"`
	Raw           *string    `db:"raw"`
	Content       *string    `db:"content"`
	SourceURL     *string    `db:"source_url"`
	Status        string     `db:"status"`
	TranslatedAt  *time.Time `db:"translated_at"`
	PrevChapterID *int64     `db:"prev_chapter_id"`
	NextChapterID *int64     `db:"next_chapter_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Chapter {
	return &domain.Chapter{
		ID:            r.ID,
		NovelID:       r.NovelID,
		ChapterNo:     r.ChapterNo,
		Title:         r.Title,
		Raw:           r.Raw,
		Content:       r.Content,
		SourceURL:     r.SourceURL,
		Status:        r.Status,
		TranslatedAt:  r.TranslatedAt,
		PrevChapterID: r.PrevChapterID,
		NextChapterID: r.NextChapterID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type linkRow struct {
	ID        int64 `db:"id"`
	ChapterNo int   `db:"chapter_no"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a chapter by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Chapter, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByNo returns the chapter of a novel with the given chapter number.
func (r *Repo) GetByNo(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error) {
	return r.getOne(ctx, sq.Eq{"novel_id": novelID, "chapter_no": chapterNo}, fmt.Sprintf("%d/%d", novelID, chapterNo))
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id any) (*domain.Chapter, error) {
	query, args, err := postgres.Psql.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}
	return dst.toDomain(), nil
}

// List returns a page of a novel's chapters in chapter_no order, plus the
// total count.
func (r *Repo) List(ctx context.Context, novelID int64, limit, offset int) ([]*domain.Chapter, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Psql.Select("count(*)").From(table).Where(sq.Eq{"novel_id": novelID}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count chapters: %w", err)
	}

	chapters, err := r.list(ctx, postgres.Psql.Select(columns...).From(table).
		Where(sq.Eq{"novel_id": novelID}).
		OrderBy("chapter_no").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, 0, err
	}
	return chapters, total, nil
}

// ListAll returns every chapter of a novel in chapter_no order.
func (r *Repo) ListAll(ctx context.Context, novelID int64) ([]*domain.Chapter, error) {
	return r.list(ctx, postgres.Psql.Select(columns...).From(table).
		Where(sq.Eq{"novel_id": novelID}).
		OrderBy("chapter_no"))
}

// ListRange returns the chapters of a novel with fromNo <= chapter_no <= toNo.
// A zero bound is open.
func (r *Repo) ListRange(ctx context.Context, novelID int64, fromNo, toNo int) ([]*domain.Chapter, error) {
	b := postgres.Psql.Select(columns...).From(table).Where(sq.Eq{"novel_id": novelID})
	if fromNo > 0 {
		b = b.Where(sq.GtOrEq{"chapter_no": fromNo})
	}
	if toNo > 0 {
		b = b.Where(sq.LtOrEq{"chapter_no": toNo})
	}
	return r.list(ctx, b.OrderBy("chapter_no"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Chapter, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	chapters := make([]*domain.Chapter, len(rows))
	for i, rw := range rows {
		chapters[i] = rw.toDomain()
	}
	return chapters, nil
}

// ListLinks returns id and chapter_no of every chapter of a novel in
// chapter_no order.
func (r *Repo) ListLinks(ctx context.Context, novelID int64) ([]domain.ChapterLink, error) {
	query, args, err := postgres.Psql.Select("id", "chapter_no").From(table).
		Where(sq.Eq{"novel_id": novelID}).
		OrderBy("chapter_no", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []linkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list chapter links: %w", err)
	}

	links := make([]domain.ChapterLink, len(rows))
	for i, rw := range rows {
		links[i] = domain.ChapterLink{ID: rw.ID, ChapterNo: rw.ChapterNo}
	}
	return links, nil
}

// FindNeighbors returns the chapters immediately before and after chapterNo
// within a novel. Either result is nil when there is no such chapter.
func (r *Repo) FindNeighbors(ctx context.Context, novelID int64, chapterNo int) (prev, next *domain.ChapterLink, err error) {
	prev, err = r.neighbor(ctx, sq.And{sq.Eq{"novel_id": novelID}, sq.Lt{"chapter_no": chapterNo}}, "chapter_no DESC")
	if err != nil {
		return nil, nil, err
	}
	next, err = r.neighbor(ctx, sq.And{sq.Eq{"novel_id": novelID}, sq.Gt{"chapter_no": chapterNo}}, "chapter_no ASC")
	if err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}

func (r *Repo) neighbor(ctx context.Context, where sq.Sqlizer, order string) (*domain.ChapterLink, error) {
	query, args, err := postgres.Psql.Select("id", "chapter_no").From(table).
		Where(where).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst linkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find neighbor: %w", err)
	}
	return &domain.ChapterLink{ID: dst.ID, ChapterNo: dst.ChapterNo}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an unlinked chapter and returns the persisted row.
// Returns domain.ErrAlreadyExists if the chapter number is taken.
func (r *Repo) Create(ctx context.Context, ch *domain.Chapter) (*domain.Chapter, error) {
	query, args, err := postgres.Psql.Insert(table).
		Columns("novel_id", "chapter_no", "title", "raw", "content", "source_url", "status").
		Values(ch.NovelID, ch.ChapterNo, ch.Title, ch.Raw, ch.Content, ch.SourceURL, ch.Status).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", fmt.Sprintf("%d/%d", ch.NovelID, ch.ChapterNo))
	}
	return dst.toDomain(), nil
}

// Update writes the editable fields of a chapter.
func (r *Repo) Update(ctx context.Context, ch *domain.Chapter) (*domain.Chapter, error) {
	return r.update(ctx, ch.ID, map[string]any{
		"title":      ch.Title,
		"raw":        ch.Raw,
		"content":    ch.Content,
		"source_url": ch.SourceURL,
		"status":     ch.Status,
	})
}

// SaveTranslation stores translated content and marks the chapter translated.
func (r *Repo) SaveTranslation(ctx context.Context, id int64, content string, at time.Time) (*domain.Chapter, error) {
	return r.update(ctx, id, map[string]any{
		"content":       content,
		"status":        domain.ChapterStatusTranslated,
		"translated_at": at,
	})
}

// UpdateContent replaces the translated content only.
func (r *Repo) UpdateContent(ctx context.Context, id int64, content string) (*domain.Chapter, error) {
	return r.update(ctx, id, map[string]any{"content": content})
}

func (r *Repo) update(ctx context.Context, id int64, set map[string]any) (*domain.Chapter, error) {
	set["updated_at"] = sq.Expr("now()")

	query, args, err := postgres.Psql.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}
	return dst.toDomain(), nil
}

// SetLinks overwrites both links of a chapter.
func (r *Repo) SetLinks(ctx context.Context, id int64, prevID, nextID *int64) error {
	return r.setLinkColumns(ctx, id, map[string]any{"prev_chapter_id": prevID, "next_chapter_id": nextID})
}

// SetPrev overwrites the prev link of a chapter.
func (r *Repo) SetPrev(ctx context.Context, id int64, prevID *int64) error {
	return r.setLinkColumns(ctx, id, map[string]any{"prev_chapter_id": prevID})
}

// SetNext overwrites the next link of a chapter.
func (r *Repo) SetNext(ctx context.Context, id int64, nextID *int64) error {
	return r.setLinkColumns(ctx, id, map[string]any{"next_chapter_id": nextID})
}

func (r *Repo) setLinkColumns(ctx context.Context, id int64, set map[string]any) error {
	query, args, err := postgres.Psql.Update(table).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "chapter", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chapter %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetLinksMany writes links for many chapters in one round trip.
func (r *Repo) SetLinksMany(ctx context.Context, links []domain.ChapterLinks) error {
	if len(links) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, l := range links {
		query, args, err := postgres.Psql.Update(table).
			Set("prev_chapter_id", l.PrevID).
			Set("next_chapter_id", l.NextID).
			Where(sq.Eq{"id": l.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		batch.Queue(query, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, l := range links {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "chapter", l.ID)
		}
	}
	return nil
}

// Delete removes one chapter. Links of its neighbors are left to the caller.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := r.deleteWhere(ctx, sq.Eq{"id": id})
	if err != nil {
		return postgres.MapError(err, "chapter", id)
	}
	if n == 0 {
		return fmt.Errorf("chapter %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByNovel removes every chapter of a novel and returns how many were deleted.
func (r *Repo) DeleteByNovel(ctx context.Context, novelID int64) (int, error) {
	n, err := r.deleteWhere(ctx, sq.Eq{"novel_id": novelID})
	if err != nil {
		return 0, fmt.Errorf("delete chapters of novel %d: %w", novelID, err)
	}
	return n, nil
}

// DeleteByNoRange removes chapters with start <= chapter_no <= end.
func (r *Repo) DeleteByNoRange(ctx context.Context, novelID int64, start, end int) (int, error) {
	n, err := r.deleteWhere(ctx, sq.And{
		sq.Eq{"novel_id": novelID},
		sq.GtOrEq{"chapter_no": start},
		sq.LtOrEq{"chapter_no": end},
	})
	if err != nil {
		return 0, fmt.Errorf("delete chapters %d..%d of novel %d: %w", start, end, novelID, err)
	}
	return n, nil
}

func (r *Repo) deleteWhere(ctx context.Context, where sq.Sqlizer) (int, error) {
	query, args, err := postgres.Psql.Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
