package repository

import (
	"context"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

// UnavailableStore stands in when the Postgres backend is selected but not
// configured. Every call fails with ErrStoreUnavailable.
type UnavailableStore struct{}

func (UnavailableStore) List(context.Context) ([]*reservation.Reservation, error) {
	return nil, errs.ErrStoreUnavailable
}

func (UnavailableStore) Upsert(context.Context, *reservation.Reservation) (*reservation.Reservation, error) {
	return nil, errs.ErrStoreUnavailable
}

func (UnavailableStore) Delete(context.Context, uuid.UUID) error {
	return errs.ErrStoreUnavailable
}
