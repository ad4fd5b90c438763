package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	pool, cleanup, err := Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, cleanup, nil
}

// Open builds the pool without touching the network. Connections are made
// on first use.
func Open(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return pool, pool.Close, nil
}
