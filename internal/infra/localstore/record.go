package localstore

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"

	"github.com/google/uuid"
)

// record is the persisted JSON shape of one reservation. Dates are plain
// YYYY-MM-DD strings so the blob stays readable.
type record struct {
	ID             uuid.UUID `json:"id"`
	AnimalName     string    `json:"animalName"`
	AnimalType     string    `json:"animalType"`
	OwnerFirstName string    `json:"ownerFirstName"`
	OwnerLastName  string    `json:"ownerLastName"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toRecord(r *reservation.Reservation) record {
	return record{
		ID:             r.ID(),
		AnimalName:     r.AnimalName(),
		AnimalType:     r.AnimalType().String(),
		OwnerFirstName: r.OwnerFirstName(),
		OwnerLastName:  r.OwnerLastName(),
		StartDate:      reservation.FormatDay(r.StartDate()),
		EndDate:        reservation.FormatDay(r.EndDate()),
		Notes:          r.Notes().String(),
		Status:         r.Status().String(),
		CreatedAt:      r.CreatedAt(),
	}
}

func (rec record) toDomain() (*reservation.Reservation, error) {
	start, err := reservation.ParseDay(rec.StartDate)
	if err != nil {
		return nil, err
	}
	end := start
	if rec.EndDate != "" {
		if end, err = reservation.ParseDay(rec.EndDate); err != nil {
			return nil, err
		}
	}
	stay, err := reservation.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	pet := reservation.Pet{
		AnimalName:     rec.AnimalName,
		AnimalType:     reservation.ParseAnimalType(rec.AnimalType),
		OwnerFirstName: rec.OwnerFirstName,
		OwnerLastName:  rec.OwnerLastName,
	}
	return reservation.ReconstructReservation(rec.ID, pet, stay, reservation.NewNotes(rec.Notes), status, rec.CreatedAt)
}
