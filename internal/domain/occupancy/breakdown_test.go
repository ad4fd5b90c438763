//go:build unit

package occupancy_test

import (
	"testing"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/occupancy"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func names(rs []*reservation.Reservation) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.AnimalName()
	}
	return out
}

func fixture() []*reservation.Reservation {
	return []*reservation.Reservation{
		builder.NewReservationBuilder().WithAnimal("Mochi", reservation.AnimalCat).WithStay("2025-03-08", "2025-03-10").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Bun", reservation.AnimalRabbit).WithOwner("Lee", "Park").WithStay("2025-03-10", "2025-03-14").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Ziggy", reservation.AnimalFerret).WithOwner("Sam", "Ortiz").WithStay("2025-03-09", "2025-03-11").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Dot", reservation.AnimalCat).WithOwner("Kim", "Ng").WithStay("2025-03-10", "2025-03-10").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Gone", reservation.AnimalCat).WithOwner("Jo", "Bell").WithStay("2025-03-09", "2025-03-12").AsCheckedOut().MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Later", reservation.AnimalRat).WithStay("2025-03-20", "2025-03-22").MustBuild(),
	}
}

func TestBreakdown(t *testing.T) {
	b := occupancy.Breakdown(fixture(), builder.Day("2025-03-10"), "")

	assert.Equal(t, builder.Day("2025-03-10"), b.Day)
	assert.Equal(t, []string{"Mochi", "Bun", "Ziggy", "Dot", "Gone"}, names(b.Boarding))
	assert.Equal(t, []string{"Bun", "Dot"}, names(b.Arriving))
	assert.Equal(t, []string{"Mochi", "Dot"}, names(b.Departing))
	assert.Equal(t, []string{"Ziggy", "Gone"}, names(b.StayingOvernight))
	assert.False(t, b.IsEmpty())

	assert.Equal(t, []occupancy.TypeCount{
		{Type: reservation.AnimalCat, Count: 2},
		{Type: reservation.AnimalRabbit, Count: 1},
		{Type: reservation.AnimalFerret, Count: 1},
	}, b.Types)
}

func TestBreakdown_SingleDayStayIsArrivingAndDeparting(t *testing.T) {
	all := []*reservation.Reservation{
		builder.NewReservationBuilder().WithStay("2025-03-10", "2025-03-10").MustBuild(),
	}
	b := occupancy.Breakdown(all, builder.Day("2025-03-10"), "")

	assert.Len(t, b.Arriving, 1)
	assert.Len(t, b.Departing, 1)
	assert.Empty(t, b.StayingOvernight)
}

func TestBreakdown_Query(t *testing.T) {
	b := occupancy.Breakdown(fixture(), builder.Day("2025-03-10"), "park")

	assert.Equal(t, []string{"Bun"}, names(b.Boarding))
	assert.Equal(t, []occupancy.TypeCount{{Type: reservation.AnimalRabbit, Count: 1}}, b.Types)
}

func TestBreakdown_EmptyDay(t *testing.T) {
	b := occupancy.Breakdown(fixture(), builder.Day("2025-04-01"), "")

	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.Arriving)
	assert.Empty(t, b.Types)
}

func TestPresentAndOccupying(t *testing.T) {
	all := fixture()
	day := builder.Day("2025-03-11")

	assert.Equal(t, []string{"Bun", "Ziggy", "Gone"}, names(occupancy.Occupying(all, day)))
	assert.Equal(t, []string{"Bun", "Ziggy"}, names(occupancy.Present(all, day)))
}

func TestFilter(t *testing.T) {
	all := fixture()

	assert.Len(t, occupancy.Filter(all, ""), len(all))
	assert.Equal(t, []string{"Ziggy"}, names(occupancy.Filter(all, "ORT")))
	assert.Empty(t, occupancy.Filter(all, "nobody"))
}

func TestFilter_MatchesAnimalAndOwnerNames(t *testing.T) {
	all := []*reservation.Reservation{
		builder.NewReservationBuilder().WithAnimal("Max", reservation.AnimalCat).MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Maxine", reservation.AnimalRabbit).MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Pip", reservation.AnimalRat).WithOwner("Ruth", "Maxwell").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Bun", reservation.AnimalRabbit).WithOwner("Lee", "Park").MustBuild(),
	}

	for _, q := range []string{"max", "MAX", " Max "} {
		t.Run(q, func(t *testing.T) {
			assert.Equal(t, []string{"Max", "Maxine", "Pip"}, names(occupancy.Filter(all, q)))
		})
	}
}

func TestTypeSummary_SkipsCheckedOut(t *testing.T) {
	all := []*reservation.Reservation{
		builder.NewReservationBuilder().WithStay("2025-03-10", "2025-03-12").AsCheckedOut().MustBuild(),
	}
	assert.Empty(t, occupancy.TypeSummary(all, builder.Day("2025-03-11")))
}
