// Package novel implements the Novel repository using PostgreSQL.
// It owns the novels table, including the context memory column.
package novel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/asonkiya/novel-chrome-extension/internal/adapter/postgres"
	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

const table = "novels"

var columns = []string{"id", "name", "source_lang", "target_lang", "context_json", "created_at", "updated_at"}

// Repo provides novel persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new novel repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	SourceLang  string    `db:"source_lang"`
	TargetLang  string    `db:"target_lang"`
	ContextJSON []byte    `db:"context_json"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Novel {
	return &domain.Novel{
		ID:         r.ID,
		Name:       r.Name,
		SourceLang: r.SourceLang,
		TargetLang: r.TargetLang,
		Context:    contextmem.Parse(r.ContextJSON),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a novel by primary key.
// Returns domain.ErrNotFound if the novel does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Novel, error) {
	query, args, err := postgres.Psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "novel", id)
	}
	return dst.toDomain(), nil
}

// GetByName returns a novel by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Novel, error) {
	query, args, err := postgres.Psql.Select(columns...).From(table).Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "novel", name)
	}
	return dst.toDomain(), nil
}

// List returns novels ordered by id with pagination, plus the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.Novel, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count novels: %w", err)
	}

	query, args, err := postgres.Psql.Select(columns...).From(table).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list novels: %w", err)
	}

	novels := make([]*domain.Novel, len(rows))
	for i, rw := range rows {
		novels[i] = rw.toDomain()
	}
	return novels, total, nil
}

// GetContextForUpdate reads the context document of a novel and locks the
// row until the surrounding transaction ends. Must run inside RunInTx.
func (r *Repo) GetContextForUpdate(ctx context.Context, id int64) (contextmem.Document, error) {
	query, args, err := postgres.Psql.Select("context_json").From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return contextmem.Document{}, fmt.Errorf("build query: %w", err)
	}

	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return contextmem.Document{}, postgres.MapError(err, "novel", id)
	}
	return contextmem.Parse(raw), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a novel and returns the persisted row.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, n *domain.Novel) (*domain.Novel, error) {
	ctxJSON, err := json.Marshal(contextmem.Normalize(n.Context))
	if err != nil {
		return nil, fmt.Errorf("encode context: %w", err)
	}

	query, args, err := postgres.Psql.Insert(table).
		Columns("name", "source_lang", "target_lang", "context_json").
		Values(n.Name, n.SourceLang, n.TargetLang, ctxJSON).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "novel", n.Name)
	}
	return dst.toDomain(), nil
}

// Update writes name and languages of a novel.
func (r *Repo) Update(ctx context.Context, n *domain.Novel) (*domain.Novel, error) {
	query, args, err := postgres.Psql.Update(table).
		Set("name", n.Name).
		Set("source_lang", n.SourceLang).
		Set("target_lang", n.TargetLang).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": n.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "novel", n.ID)
	}
	return dst.toDomain(), nil
}

// UpdateContext replaces the stored context document.
func (r *Repo) UpdateContext(ctx context.Context, id int64, doc contextmem.Document) error {
	ctxJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode context: %w", err)
	}

	query, args, err := postgres.Psql.Update(table).
		Set("context_json", ctxJSON).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "novel", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("novel %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a novel. Chapters, progress and bookmarks cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "novel", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("novel %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
