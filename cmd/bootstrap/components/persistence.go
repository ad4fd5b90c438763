package components

import (
	"context"
	"log/slog"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/diagnostics"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/localstore"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/repository"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		sqlc.New,
		NewReservationStore,
		NewStoreInfo,
		fx.Annotate(
			NewConnectionProbe,
			fx.As(new(usecase.ConnectionProbe)),
		),
	),
)

// NewReservationStore picks the backend from STORE_BACKEND. Selecting
// postgres without a configured database yields a store that always
// reports it is unavailable.
func NewReservationStore(
	lc fx.Lifecycle,
	cfg config.Config,
	pool *pgxpool.Pool,
	queries *sqlc.Queries,
	clk clock.Clock,
	logger *slog.Logger,
) (shared.ReservationStore, error) {
	backend, err := cfg.ResolveBackend()
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.StoreBackendPostgres:
		if pool == nil {
			logger.Warn("STORE_BACKEND=postgres but the database is not configured")
			return repository.UnavailableStore{}, nil
		}
		logger.Info("using postgres reservation store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return repository.NewReservationRepository(queries, pool, logger), nil

	default:
		store, err := localstore.Open(cfg.Store.LocalPath, clk, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using local reservation store (demo mode)", "path", cfg.Store.LocalPath)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil
	}
}

func NewStoreInfo(cfg config.Config) (handler.StoreInfo, error) {
	backend, err := cfg.ResolveBackend()
	if err != nil {
		return handler.StoreInfo{}, err
	}
	return handler.StoreInfo{
		Backend:  backend,
		DemoMode: backend == config.StoreBackendLocal,
	}, nil
}

func NewConnectionProbe(info handler.StoreInfo, pool *pgxpool.Pool, queries *sqlc.Queries, logger *slog.Logger) *diagnostics.PostgresProbe {
	// A nil *pgxpool.Pool must not become a non-nil interface.
	if pool == nil {
		return diagnostics.NewPostgresProbe(info.Backend, nil, queries, logger)
	}
	return diagnostics.NewPostgresProbe(info.Backend, pool, queries, logger)
}
