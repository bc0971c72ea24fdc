package novel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// GetContext returns the normalized context document of a novel.
func (s *Service) GetContext(ctx context.Context, id int64) (contextmem.Document, error) {
	n, err := s.novels.GetByID(ctx, id)
	if err != nil {
		return contextmem.Document{}, fmt.Errorf("get novel: %w", err)
	}
	return contextmem.Normalize(n.Context), nil
}

// ReplaceContext stores raw as the novel's context document after
// normalizing it. raw must be a JSON object.
func (s *Service) ReplaceContext(ctx context.Context, id int64, raw []byte) (contextmem.Document, error) {
	doc, err := contextmem.ParseStrict(raw)
	if err != nil {
		return contextmem.Document{}, domain.NewValidationError("context_json", "must be a JSON object")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.novels.GetContextForUpdate(ctx, id); err != nil {
			return fmt.Errorf("lock novel context: %w", err)
		}
		if err := s.novels.UpdateContext(ctx, id, doc); err != nil {
			return fmt.Errorf("replace context: %w", err)
		}
		return nil
	})
	if err != nil {
		return contextmem.Document{}, err
	}

	locks, entities := len(doc.Locks), len(doc.Canon.Entities)
	s.log.InfoContext(ctx, "novel context replaced",
		slog.Int64("novel_id", id),
		slog.Int("locks", locks),
		slog.Int("entities", entities),
	)
	return doc, nil
}
