package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedNovel creates a novel with a unique name and an empty context document.
func SeedNovel(t *testing.T, pool *pgxpool.Pool) domain.Novel {
	t.Helper()
	ctx := context.Background()

	novel := domain.Novel{
		Name:       "Test Novel " + uniqueSuffix(),
		SourceLang: domain.DefaultSourceLang,
		TargetLang: domain.DefaultTargetLang,
		Context:    contextmem.New(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO novels (name, source_lang, target_lang, context_json)
		 VALUES ($1, $2, $3, '{}'::jsonb)
		 RETURNING id, created_at, updated_at`,
		novel.Name, novel.SourceLang, novel.TargetLang,
	).Scan(&novel.ID, &novel.CreatedAt, &novel.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNovel: %v", err)
	}

	return novel
}

// SeedChapter creates an unlinked raw chapter.
func SeedChapter(t *testing.T, pool *pgxpool.Pool, novelID int64, chapterNo int, raw string) domain.Chapter {
	t.Helper()
	ctx := context.Background()

	ch := domain.Chapter{
		NovelID:   novelID,
		ChapterNo: chapterNo,
		Raw:       &raw,
		Status:    domain.ChapterStatusRawOnly,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO chapters (novel_id, chapter_no, raw, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		novelID, chapterNo, raw, ch.Status,
	).Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedChapter: %v", err)
	}

	return ch
}
