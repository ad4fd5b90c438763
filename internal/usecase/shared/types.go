package shared

import (
	"context"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationStore is the only persistence contract the core depends on.
// Upsert inserts when the reservation has no id and updates otherwise.
// List is ordered by start date ascending.
type ReservationStore interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	Upsert(ctx context.Context, r *reservation.Reservation) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, boarders []*reservation.Reservation, day time.Time, all []*reservation.Reservation) (string, error)
}

// ChangeListener is told after every successful reservation mutation.
type ChangeListener interface {
	ReservationsChanged()
}

type NopChangeListener struct{}

func (NopChangeListener) ReservationsChanged() {}
