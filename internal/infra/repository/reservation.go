package repository

import (
	"context"
	"log/slog"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/repository/converter"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Reservations, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (sqlc.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

// ReservationRepository is the Postgres-backed reservation store.
type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// List returns every reservation ordered by start date. Rows that no longer
// satisfy the domain rules are skipped and logged.
func (r *ReservationRepository) List(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindFromDBError(err), "failed to list reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			r.logger.Warn("skipping unreadable reservation row",
				slog.String("id", row.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) Upsert(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	var (
		row sqlc.Reservations
		err error
	)
	if res.IsPersisted() {
		row, err = r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindFromDBError(err), "failed to update reservation", err)
		}
	} else {
		row, err = r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindFromDBError(err), "failed to create reservation", err)
		}
	}

	saved, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptData, "failed to convert reservation row", err)
	}
	return saved, nil
}

// Delete is a no-op for an unknown id.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteReservation(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindFromDBError(err), "failed to delete reservation", err)
	}
	return nil
}
