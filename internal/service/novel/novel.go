package novel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Create stores a new novel with an empty context document.
// Returns domain.ErrAlreadyExists if the name is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Novel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.novels.Create(ctx, &domain.Novel{
		Name:       strings.TrimSpace(input.Name),
		SourceLang: langOr(input.SourceLang, domain.DefaultSourceLang),
		TargetLang: langOr(input.TargetLang, domain.DefaultTargetLang),
		Context:    contextmem.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("create novel: %w", err)
	}

	s.log.InfoContext(ctx, "novel created",
		slog.Int64("novel_id", n.ID),
		slog.String("name", n.Name),
	)
	return n, nil
}

// Get returns a novel by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Novel, error) {
	n, err := s.novels.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get novel: %w", err)
	}
	return n, nil
}

// List returns a page of novels and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Novel, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	novels, total, err := s.novels.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list novels: %w", err)
	}
	return novels, total, nil
}

// Update applies a partial update to a novel.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Novel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Novel
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.novels.GetByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("get novel: %w", err)
		}
		if input.Name != nil {
			n.Name = strings.TrimSpace(*input.Name)
		}
		if input.SourceLang != nil {
			n.SourceLang = domain.NormalizeLang(*input.SourceLang)
		}
		if input.TargetLang != nil {
			n.TargetLang = domain.NormalizeLang(*input.TargetLang)
		}

		updated, err = s.novels.Update(ctx, n)
		if err != nil {
			return fmt.Errorf("update novel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a novel together with its chapters, reading progress and
// bookmarks, and returns the deleted novel.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Novel, error) {
	var deleted *domain.Novel
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.novels.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get novel: %w", err)
		}
		if err := s.novels.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete novel: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "novel deleted",
		slog.Int64("novel_id", deleted.ID),
		slog.String("name", deleted.Name),
	)
	return deleted, nil
}
