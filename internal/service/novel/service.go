// Package novel manages novels and their stored context memory.
package novel

import (
	"context"
	"log/slog"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

type novelRepo interface {
	Create(ctx context.Context, n *domain.Novel) (*domain.Novel, error)
	GetByID(ctx context.Context, id int64) (*domain.Novel, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Novel, int, error)
	Update(ctx context.Context, n *domain.Novel) (*domain.Novel, error)
	Delete(ctx context.Context, id int64) error
	GetContextForUpdate(ctx context.Context, id int64) (contextmem.Document, error)
	UpdateContext(ctx context.Context, id int64, doc contextmem.Document) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides novel management operations.
type Service struct {
	novels novelRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new novel service.
func NewService(log *slog.Logger, novels novelRepo, tx txManager) *Service {
	return &Service{
		novels: novels,
		tx:     tx,
		log:    log.With("service", "novel"),
	}
}
