// Package diagnostics checks the remote reservation store step by step.
package diagnostics

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"
)

const probeTimeout = 5 * time.Second

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	sqlc.DBTX
	Ping(ctx context.Context) error
}

type CountQueries interface {
	CountReservations(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type PostgresProbe struct {
	backend string
	pool    Pool
	queries CountQueries
	logger  *slog.Logger
}

// NewPostgresProbe takes a nil pool when the database is not configured.
func NewPostgresProbe(backend string, pool Pool, queries CountQueries, logger *slog.Logger) *PostgresProbe {
	return &PostgresProbe{
		backend: backend,
		pool:    pool,
		queries: queries,
		logger:  logger,
	}
}

func (p *PostgresProbe) Backend() string {
	return p.backend
}

func (p *PostgresProbe) Configured() bool {
	return p.pool != nil
}

func (p *PostgresProbe) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := p.pool.Ping(ctx); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindDBFailure, "database ping failed", err)
	}
	return nil
}

// ProbeTable runs the same count query a client would use to test access.
func (p *PostgresProbe) ProbeTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if _, err := p.queries.CountReservations(ctx, p.pool); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindFromDBError(err), "reservations table probe failed", err)
	}
	return nil
}
