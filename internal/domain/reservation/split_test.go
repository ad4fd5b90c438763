//go:build unit

package reservation_test

import (
	"testing"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDayRemoval(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		day       string
		outcome   reservation.RemovalOutcome
		remaining []string
	}{
		{name: "day outside the stay", start: "2025-03-10", end: "2025-03-12", day: "2025-03-14", outcome: reservation.RemovalNoop, remaining: []string{"2025-03-10..2025-03-12"}},
		{name: "only day of a single-day stay", start: "2025-03-10", end: "2025-03-10", day: "2025-03-10", outcome: reservation.RemovalFullDelete},
		{name: "first day", start: "2025-03-10", end: "2025-03-12", day: "2025-03-10", outcome: reservation.RemovalShrinkStart, remaining: []string{"2025-03-11..2025-03-12"}},
		{name: "last day", start: "2025-03-10", end: "2025-03-12", day: "2025-03-12", outcome: reservation.RemovalShrinkEnd, remaining: []string{"2025-03-10..2025-03-11"}},
		{name: "middle day", start: "2025-03-10", end: "2025-03-12", day: "2025-03-11", outcome: reservation.RemovalSplit, remaining: []string{"2025-03-10..2025-03-10", "2025-03-12..2025-03-12"}},
		{name: "two-day stay first day", start: "2025-03-10", end: "2025-03-11", day: "2025-03-10", outcome: reservation.RemovalShrinkStart, remaining: []string{"2025-03-11..2025-03-11"}},
		{name: "split across a month boundary", start: "2025-01-30", end: "2025-02-03", day: "2025-02-01", outcome: reservation.RemovalSplit, remaining: []string{"2025-01-30..2025-01-31", "2025-02-02..2025-02-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := builder.NewReservationBuilder().WithStay(tt.start, tt.end).MustBuild()
			before := original.Stay()

			plan := reservation.PlanDayRemoval(original, builder.Day(tt.day))

			assert.Equal(t, tt.outcome, plan.Outcome)
			assert.Equal(t, before, original.Stay(), "original must not be modified")

			result := plan.Result()
			got := make([]string, len(result))
			for i, r := range result {
				got[i] = r.Stay().String()
			}
			if len(tt.remaining) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.remaining, got)
			}
		})
	}
}

func TestPlanDayRemoval_SplitIdentity(t *testing.T) {
	original := builder.NewReservationBuilder().
		WithStay("2025-03-10", "2025-03-14").
		WithNotes("Insulin at 8am").
		MustBuild()

	plan := reservation.PlanDayRemoval(original, builder.Day("2025-03-12"))
	require.Equal(t, reservation.RemovalSplit, plan.Outcome)
	require.NotNil(t, plan.Updated)
	require.NotNil(t, plan.Created)

	assert.Equal(t, original.ID(), plan.Updated.ID(), "first half keeps the original id")
	assert.Equal(t, original.CreatedAt(), plan.Updated.CreatedAt())
	assert.Equal(t, uuid.Nil, plan.Created.ID(), "second half is a new reservation")
	assert.True(t, plan.Created.CreatedAt().IsZero())

	for _, half := range []*reservation.Reservation{plan.Updated, plan.Created} {
		assert.Equal(t, original.Pet(), half.Pet())
		assert.Equal(t, original.Notes(), half.Notes())
		assert.Equal(t, original.Status(), half.Status())
		assert.False(t, half.OccupiesDay(builder.Day("2025-03-12")))
	}

	assert.Equal(t, builder.Day("2025-03-11"), plan.Updated.EndDate())
	assert.Equal(t, builder.Day("2025-03-13"), plan.Created.StartDate())
	assert.True(t, plan.IsMutation())
}

func TestPlanDayRemoval_NoopIsNotAMutation(t *testing.T) {
	original := builder.NewReservationBuilder().MustBuild()
	plan := reservation.PlanDayRemoval(original, builder.Day("2024-01-01"))

	assert.False(t, plan.IsMutation())
	assert.Nil(t, plan.Updated)
	assert.Nil(t, plan.Created)
	assert.Same(t, original, plan.Target)
}
