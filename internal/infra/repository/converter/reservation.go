package converter

import (
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/pgconv"
)

var ErrInvalidRow = errs.New("reservation row has no valid dates")

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		AnimalName:     r.AnimalName(),
		AnimalType:     r.AnimalType().String(),
		OwnerFirstName: r.OwnerFirstName(),
		OwnerLastName:  r.OwnerLastName(),
		StartDate:      pgconv.DateToPgtype(r.StartDate()),
		EndDate:        pgconv.DateToPgtype(r.EndDate()),
		Notes:          pgconv.TextToPgtype(r.Notes().String()),
		Status:         r.Status().String(),
	}
}

func ReservationToUpdateParams(r *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:             r.ID(),
		AnimalName:     r.AnimalName(),
		AnimalType:     r.AnimalType().String(),
		OwnerFirstName: r.OwnerFirstName(),
		OwnerLastName:  r.OwnerLastName(),
		StartDate:      pgconv.DateToPgtype(r.StartDate()),
		EndDate:        pgconv.DateToPgtype(r.EndDate()),
		Notes:          pgconv.TextToPgtype(r.Notes().String()),
		Status:         r.Status().String(),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	start, ok := pgconv.DateFromPgtype(row.StartDate)
	if !ok {
		return nil, ErrInvalidRow
	}
	end, ok := pgconv.DateFromPgtype(row.EndDate)
	if !ok {
		return nil, ErrInvalidRow
	}
	stay, err := reservation.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	pet := reservation.Pet{
		AnimalName:     row.AnimalName,
		AnimalType:     reservation.ParseAnimalType(row.AnimalType),
		OwnerFirstName: row.OwnerFirstName,
		OwnerLastName:  row.OwnerLastName,
	}
	return reservation.ReconstructReservation(
		row.ID,
		pet,
		stay,
		reservation.NewNotes(pgconv.StringFromPgtype(row.Notes)),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
