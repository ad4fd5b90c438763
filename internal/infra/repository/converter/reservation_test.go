//go:build unit

package converter_test

import (
	"testing"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/repository/converter"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/sqlc"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationFromRow(t *testing.T) {
	b := builder.NewReservationBuilder()

	got, err := converter.ReservationFromRow(b.BuildInfra())
	require.NoError(t, err)

	assert.Equal(t, b.ID, got.ID())
	assert.Equal(t, "Mochi", got.AnimalName())
	assert.Equal(t, reservation.AnimalCat, got.AnimalType())
	assert.Equal(t, builder.Day("2025-03-10"), got.StartDate())
	assert.Equal(t, builder.Day("2025-03-12"), got.EndDate())
	assert.Equal(t, "Feed twice daily", got.Notes().String())
	assert.Equal(t, reservation.StatusActive, got.Status())
	assert.Equal(t, b.CreatedAt, got.CreatedAt())
}

func TestReservationFromRow_Lenient(t *testing.T) {
	row := builder.NewReservationBuilder().BuildInfra()
	row.AnimalType = "guinea pig"
	row.Status = ""
	row.Notes = pgtype.Text{}

	got, err := converter.ReservationFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, reservation.AnimalGuineaPig, got.AnimalType())
	assert.Equal(t, reservation.StatusActive, got.Status())
	assert.True(t, got.Notes().IsEmpty())

	row.AnimalType = "Parrot"
	got, err = converter.ReservationFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, reservation.AnimalOther, got.AnimalType())
}

func TestReservationFromRow_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sqlc.Reservations)
	}{
		{name: "null start", mutate: func(r *sqlc.Reservations) { r.StartDate = pgtype.Date{} }},
		{name: "null end", mutate: func(r *sqlc.Reservations) { r.EndDate = pgtype.Date{} }},
		{name: "end before start", mutate: func(r *sqlc.Reservations) {
			r.EndDate = pgtype.Date{Time: builder.Day("2025-03-01"), Valid: true}
		}},
		{name: "unknown status", mutate: func(r *sqlc.Reservations) { r.Status = "archived" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := builder.NewReservationBuilder().BuildInfra()
			tt.mutate(&row)

			got, err := converter.ReservationFromRow(row)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestReservationToParams(t *testing.T) {
	r := builder.NewReservationBuilder().WithNotes("").AsCheckedOut().MustBuild()

	want := sqlc.CreateReservationParams{
		AnimalName:     "Mochi",
		AnimalType:     "Cat",
		OwnerFirstName: "Ana",
		OwnerLastName:  "Silva",
		StartDate:      pgtype.Date{Time: builder.Day("2025-03-10"), Valid: true},
		EndDate:        pgtype.Date{Time: builder.Day("2025-03-12"), Valid: true},
		Notes:          pgtype.Text{},
		Status:         "checked-out",
	}
	if diff := cmp.Diff(want, converter.ReservationToCreateParams(r)); diff != "" {
		t.Errorf("create params mismatch (-want +got):\n%s", diff)
	}

	update := converter.ReservationToUpdateParams(r)
	assert.Equal(t, r.ID(), update.ID)
	assert.Equal(t, want.StartDate, update.StartDate)
	assert.Equal(t, want.Status, update.Status)
	assert.False(t, update.Notes.Valid)
}
