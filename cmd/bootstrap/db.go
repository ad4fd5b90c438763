package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/db"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const startupPingTimeout = 5 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB returns a nil pool when the database is not configured. An
// unreachable database is logged and left to the diagnostics endpoint so
// the calendar still starts.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if !cfg.DB.Configured() {
		logger.Info("database not configured")
		return nil, nil
	}

	pool, cleanup, err := db.Open(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Warn("database is not reachable at startup", "host", cfg.DB.Host, "error", err.Error())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
