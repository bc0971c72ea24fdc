package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// PingQuerier is a Querier that can be pinged, such as *pgxpool.Pool.
type PingQuerier interface {
	Querier
	Ping(ctx context.Context) error
}

// Probe reports database reachability and the applied schema version for
// health checks.
type Probe struct {
	db PingQuerier
}

// NewProbe creates a Probe.
func NewProbe(db PingQuerier) *Probe {
	return &Probe{db: db}
}

// Ping checks that the database answers.
func (p *Probe) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// SchemaVersion returns the highest applied goose migration, or 0 when
// none has been applied.
func (p *Probe) SchemaVersion(ctx context.Context) (int64, error) {
	query, args, err := Psql.
		Select("COALESCE(MAX(version_id), 0)").
		From("goose_db_version").
		Where(sq.Eq{"is_applied": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var v int64
	if err := p.db.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	return v, nil
}
