//go:build unit

package localstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra/localstore"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/builder"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LocalStoreTestSuite struct {
	suite.Suite
	db    *gorm.DB
	clock *clock.MockClock
	store *localstore.Store
	ctx   context.Context
}

func TestLocalStoreSuite(t *testing.T) {
	suite.Run(t, new(LocalStoreTestSuite))
}

func (s *LocalStoreTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)

	s.db = db
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))
	s.store, err = localstore.New(db, s.clock, testutil.DiscardLogger())
	s.Require().NoError(err)
}

func (s *LocalStoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *LocalStoreTestSuite) writeDocument(value string) {
	err := s.db.Save(&localstore.Entry{Key: localstore.StorageKey, Value: value, UpdatedAt: s.clock.Now()}).Error
	s.Require().NoError(err)
}

func (s *LocalStoreTestSuite) TestList_EmptyStore() {
	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *LocalStoreTestSuite) TestUpsert_AssignsIdentityToNewReservations() {
	draft, err := builder.NewReservationBuilder().BuildNew()
	s.Require().NoError(err)

	saved, err := s.store.Upsert(s.ctx, draft)
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, saved.ID())
	s.True(saved.CreatedAt().Equal(s.clock.Now()))
	s.False(draft.IsPersisted(), "input must not be modified")

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(saved.ID(), items[0].ID())
	s.Equal(saved.Stay(), items[0].Stay())
	s.Equal("Feed twice daily", items[0].Notes().String())
}

func (s *LocalStoreTestSuite) TestUpsert_ReplacesExisting() {
	draft, err := builder.NewReservationBuilder().BuildNew()
	s.Require().NoError(err)
	saved, err := s.store.Upsert(s.ctx, draft)
	s.Require().NoError(err)

	edited := saved.Clone()
	s.Require().NoError(edited.CheckOut())
	s.clock.AddDays(1)

	_, err = s.store.Upsert(s.ctx, edited)
	s.Require().NoError(err)

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.True(items[0].IsCheckedOut())
	s.True(items[0].CreatedAt().Equal(saved.CreatedAt()), "creation time is kept")
}

func (s *LocalStoreTestSuite) TestUpsert_UnknownIDIsAppended() {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CreatedAt = time.Time{}
	}).MustBuild()

	saved, err := s.store.Upsert(s.ctx, r)
	s.Require().NoError(err)
	s.Equal(r.ID(), saved.ID())
	s.False(saved.CreatedAt().IsZero())

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *LocalStoreTestSuite) TestList_SortedByStartDate() {
	for _, stay := range [][2]string{{"2025-03-20", "2025-03-21"}, {"2025-03-01", "2025-03-02"}, {"2025-03-10", "2025-03-10"}} {
		draft, err := builder.NewReservationBuilder().WithStay(stay[0], stay[1]).BuildNew()
		s.Require().NoError(err)
		_, err = s.store.Upsert(s.ctx, draft)
		s.Require().NoError(err)
	}

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal(builder.Day("2025-03-01"), items[0].StartDate())
	s.Equal(builder.Day("2025-03-10"), items[1].StartDate())
	s.Equal(builder.Day("2025-03-20"), items[2].StartDate())
}

func (s *LocalStoreTestSuite) TestDelete() {
	var ids []uuid.UUID
	for _, name := range []string{"Mochi", "Bun"} {
		draft, err := builder.NewReservationBuilder().WithAnimal(name, reservation.AnimalCat).BuildNew()
		s.Require().NoError(err)
		saved, err := s.store.Upsert(s.ctx, draft)
		s.Require().NoError(err)
		ids = append(ids, saved.ID())
	}

	s.Require().NoError(s.store.Delete(s.ctx, ids[0]))
	s.Require().NoError(s.store.Delete(s.ctx, uuid.New()), "unknown id is a no-op")

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(ids[1], items[0].ID())
}

func (s *LocalStoreTestSuite) TestList_UnreadableDocumentIsEmpty() {
	s.writeDocument("{not json")

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *LocalStoreTestSuite) TestList_BrowserBlobIsNotImported() {
	s.writeDocument(`[{"id":"1717400000000","animalName":"Mochi","animalType":"Cat","ownerFirstName":"Ana","ownerLastName":"Silva",` +
		`"startDate":"2024-06-03T00:00:00.000Z","endDate":"2024-06-05T00:00:00.000Z","created_at":"2024-06-01T10:00:00.000Z"}]`)

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(items)

	saved, err := s.store.Upsert(s.ctx, builder.NewReservationBuilder().AsUnsaved().MustBuild())
	s.Require().NoError(err)
	items, err = s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(saved.ID(), items[0].ID())
}

func (s *LocalStoreTestSuite) TestList_SkipsInvalidRecords() {
	good := uuid.New()
	s.writeDocument(`[
		{"id":"` + good.String() + `","animalName":"Mochi","animalType":"cat","ownerFirstName":"Ana","ownerLastName":"Silva","startDate":"2025-03-10","createdAt":"2025-03-01T09:00:00Z"},
		{"id":"` + uuid.NewString() + `","animalName":"Backwards","animalType":"Cat","ownerFirstName":"Ana","ownerLastName":"Silva","startDate":"2025-03-12","endDate":"2025-03-10"},
		{"id":"` + uuid.NewString() + `","animalName":"BadDate","animalType":"Cat","ownerFirstName":"Ana","ownerLastName":"Silva","startDate":"03/10/2025"}
	]`)

	items, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)

	r := items[0]
	s.Equal(good, r.ID())
	s.Equal(reservation.AnimalCat, r.AnimalType(), "legacy lower-case type is normalised")
	s.Equal(reservation.StatusActive, r.Status(), "missing status means active")
	s.False(r.IsMultiDay(), "missing end date means a single-day stay")
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "boarding.db")
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	first, err := localstore.Open(path, clk, testutil.DiscardLogger())
	require.NoError(t, err)
	draft, err := builder.NewReservationBuilder().BuildNew()
	require.NoError(t, err)
	saved, err := first.Upsert(ctx, draft)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := localstore.Open(path, clk, testutil.DiscardLogger())
	require.NoError(t, err)
	defer second.Close()

	items, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, saved.ID(), items[0].ID())
}
