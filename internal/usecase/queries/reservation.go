package queries

import (
	"context"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/occupancy"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSuggestionLimit = 8

var ErrInvalidMonth = errs.New("month must be between 1 and 12")

type ReservationQueries interface {
	List(ctx context.Context, query string) ([]*reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Daily(ctx context.Context, day time.Time, query string) (*occupancy.DailyBreakdown, error)
	Month(ctx context.Context, year int, month time.Month) ([]occupancy.Cell, error)
	Suggestions(ctx context.Context, query string, limit int) ([]reservation.Pet, error)
}

type reservationQueriesImpl struct {
	store shared.ReservationStore
	clock clock.Clock
}

func NewReservationQueries(store shared.ReservationStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) List(ctx context.Context, query string) ([]*reservation.Reservation, error) {
	all, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return occupancy.Filter(all, query), nil
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, _, err := shared.FindReservation(ctx, q.store, id)
	return r, err
}

func (q *reservationQueriesImpl) Daily(ctx context.Context, day time.Time, query string) (*occupancy.DailyBreakdown, error) {
	all, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	b := occupancy.Breakdown(all, day, query)
	return &b, nil
}

func (q *reservationQueriesImpl) Month(ctx context.Context, year int, month time.Month) ([]occupancy.Cell, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	all, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return occupancy.MonthGrid(year, month, all, clock.Today(q.clock)), nil
}

func (q *reservationQueriesImpl) Suggestions(ctx context.Context, query string, limit int) ([]reservation.Pet, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	all, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return occupancy.PetSuggestions(all, query, limit), nil
}
