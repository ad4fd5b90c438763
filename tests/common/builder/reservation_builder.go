//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	AnimalName     string
	AnimalType     reservation.AnimalType
	OwnerFirstName string
	OwnerLastName  string
	Start          time.Time
	End            time.Time
	Notes          string
	Status         reservation.Status
	CreatedAt      time.Time
}

// NewReservationBuilder describes a persisted three-night cat stay from 2025-03-10 to 2025-03-12.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		AnimalName:     "Mochi",
		AnimalType:     reservation.AnimalCat,
		OwnerFirstName: "Ana",
		OwnerLastName:  "Silva",
		Start:          Day("2025-03-10"),
		End:            Day("2025-03-12"),
		Notes:          "Feed twice daily",
		Status:         reservation.StatusActive,
		CreatedAt:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// Day parses YYYY-MM-DD and panics on bad input.
func Day(s string) time.Time {
	d, err := reservation.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) pet() reservation.Pet {
	return reservation.Pet{
		AnimalName:     b.AnimalName,
		AnimalType:     b.AnimalType,
		OwnerFirstName: b.OwnerFirstName,
		OwnerLastName:  b.OwnerLastName,
	}
}

// BuildDomain reconstructs a stored reservation.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewDateRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(b.ID, b.pet(), stay, reservation.NewNotes(b.Notes), b.Status, b.CreatedAt)
}

// MustBuild is BuildDomain for fixtures that are known to be valid.
func (b *ReservationBuilder) MustBuild() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

// BuildNew returns the same reservation before it was stored.
func (b *ReservationBuilder) BuildNew() (*reservation.Reservation, error) {
	stay, err := reservation.NewDateRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.pet(), stay, reservation.NewNotes(b.Notes))
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:             b.ID,
		AnimalName:     b.AnimalName,
		AnimalType:     b.AnimalType.String(),
		OwnerFirstName: b.OwnerFirstName,
		OwnerLastName:  b.OwnerLastName,
		StartDate:      pgtype.Date{Time: b.Start, Valid: true},
		EndDate:        pgtype.Date{Time: b.End, Valid: true},
		Notes:          pgtype.Text{String: b.Notes, Valid: b.Notes != ""},
		Status:         b.Status.String(),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.SaveReservationRequest {
	end := reservation.FormatDay(b.End)
	return reqdto.SaveReservationRequest{
		AnimalName:     b.AnimalName,
		AnimalType:     b.AnimalType.String(),
		OwnerFirstName: b.OwnerFirstName,
		OwnerLastName:  b.OwnerLastName,
		StartDate:      reservation.FormatDay(b.Start),
		EndDate:        &end,
		Notes:          b.Notes,
	}
}

func (b *ReservationBuilder) BuildInput() commands.SaveReservationInput {
	end := b.End
	return commands.SaveReservationInput{
		AnimalName:     b.AnimalName,
		AnimalType:     b.AnimalType.String(),
		OwnerFirstName: b.OwnerFirstName,
		OwnerLastName:  b.OwnerLastName,
		Start:          b.Start,
		End:            &end,
		Notes:          b.Notes,
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithAnimal(name string, t reservation.AnimalType) *ReservationBuilder {
	b.AnimalName = name
	b.AnimalType = t
	return b
}

func (b *ReservationBuilder) WithOwner(first, last string) *ReservationBuilder {
	b.OwnerFirstName = first
	b.OwnerLastName = last
	return b
}

// WithStay takes YYYY-MM-DD dates.
func (b *ReservationBuilder) WithStay(start, end string) *ReservationBuilder {
	b.Start = Day(start)
	b.End = Day(end)
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = notes
	return b
}

func (b *ReservationBuilder) AsCheckedOut() *ReservationBuilder {
	b.Status = reservation.StatusCheckedOut
	return b
}

func (b *ReservationBuilder) AsUnsaved() *ReservationBuilder {
	b.ID = uuid.Nil
	b.CreatedAt = time.Time{}
	return b
}
