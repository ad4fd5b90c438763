//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"
	sharedmock "github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*sharedmock.MockReservationStore, queries.ReservationQueries) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockReservationStore(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	return store, queries.NewReservationQueries(store, clk)
}

func sample() []*reservation.Reservation {
	return []*reservation.Reservation{
		builder.NewReservationBuilder().WithAnimal("Mochi", reservation.AnimalCat).WithStay("2025-03-09", "2025-03-11").MustBuild(),
		builder.NewReservationBuilder().WithAnimal("Bun", reservation.AnimalRabbit).WithOwner("Lee", "Park").WithStay("2025-03-10", "2025-03-10").MustBuild(),
	}
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by name", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().List(ctx).Return(sample(), nil)

		got, err := q.List(ctx, "park")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bun", got[0].AnimalName())
	})

	t.Run("store failure is classified", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().List(ctx).Return(nil, errors.New("boom"))

		_, err := q.List(ctx, "")
		assert.True(t, errs.Is(err, errs.ErrStoreOperationFailed))
	})
}

func TestReservationQueries_Get(t *testing.T) {
	ctx := context.Background()
	all := sample()

	t.Run("found", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().List(ctx).Return(all, nil)

		got, err := q.Get(ctx, all[1].ID())
		require.NoError(t, err)
		assert.Same(t, all[1], got)
	})

	t.Run("not found", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().List(ctx).Return(all, nil)

		_, err := q.Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}

func TestReservationQueries_Daily(t *testing.T) {
	ctx := context.Background()
	store, q := setup(t)
	store.EXPECT().List(ctx).Return(sample(), nil)

	b, err := q.Daily(ctx, builder.Day("2025-03-10"), "")
	require.NoError(t, err)
	assert.Len(t, b.Boarding, 2)
	assert.Len(t, b.StayingOvernight, 1)
	assert.Len(t, b.Arriving, 1)
}

func TestReservationQueries_Month(t *testing.T) {
	ctx := context.Background()

	t.Run("marks today from the clock", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().List(ctx).Return(sample(), nil)

		cells, err := q.Month(ctx, 2025, time.March)
		require.NoError(t, err)

		var today int
		for _, c := range cells {
			if c.IsToday {
				today++
				assert.Equal(t, builder.Day("2025-03-10"), c.Day)
				assert.Len(t, c.Reservations, 2)
			}
		}
		assert.Equal(t, 1, today)
	})

	t.Run("invalid month never reaches the store", func(t *testing.T) {
		_, q := setup(t)

		_, err := q.Month(ctx, 2025, time.Month(13))
		assert.ErrorIs(t, err, queries.ErrInvalidMonth)
	})
}

func TestReservationQueries_Suggestions(t *testing.T) {
	ctx := context.Background()
	store, q := setup(t)

	many := make([]*reservation.Reservation, 0, 10)
	for i := range 10 {
		many = append(many, builder.NewReservationBuilder().
			WithAnimal(string(rune('A'+i))+"ri", reservation.AnimalCat).
			MustBuild())
	}
	store.EXPECT().List(ctx).Return(many, nil)

	pets, err := q.Suggestions(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, pets, 8, "zero limit falls back to the default")
}
