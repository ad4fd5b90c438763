package shared

import (
	"context"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

// StoreErr classifies a store failure. Unavailable stores keep their kind,
// everything else becomes StoreOperationFailed, and missing rows are also
// marked ReservationNotFound.
func StoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errs.Is(err, errs.ErrStoreUnavailable) {
		return err
	}
	marked := errs.Mark(err, errs.ErrStoreOperationFailed)
	if infra.IsKind(err, infra.KindNotFound) {
		marked = errs.Mark(marked, errs.ErrReservationNotFound)
	}
	return marked
}

// FindReservation scans the full listing for id.
func FindReservation(ctx context.Context, store ReservationStore, id uuid.UUID) (*reservation.Reservation, []*reservation.Reservation, error) {
	all, err := store.List(ctx)
	if err != nil {
		return nil, nil, StoreErr(err)
	}
	for _, r := range all {
		if r.ID() == id {
			return r, all, nil
		}
	}
	return nil, all, errs.ErrReservationNotFound
}
