// Package localstore keeps reservations on the local machine when no
// database is configured. The whole collection is one JSON document under
// a single key in a SQLite key/value table.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/clock"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StorageKey names the document holding every reservation.
const StorageKey = "vet-boarding-reservations"

type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Store struct {
	db     *gorm.DB
	clock  clock.Clock
	logger *slog.Logger

	mu sync.Mutex
}

// Open opens (or creates) the SQLite file at path. Use ":memory:" for a
// throwaway store.
func Open(path string, clk clock.Clock, slogger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(slogger, infra.KindDBFailure, "failed to open local store", err)
	}
	return New(db, clk, slogger)
}

func New(db *gorm.DB, clk clock.Clock, slogger *slog.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, infra.WrapRepoErr(slogger, infra.KindDBFailure, "failed to migrate local store", err)
	}
	// SQLite allows one writer, and each ":memory:" connection is its own database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	return &Store{db: db, clock: clk, logger: slogger}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) List(ctx context.Context) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert assigns an id and creation time to new reservations. An id that is
// not in the collection is appended as a new entry.
func (s *Store) Upsert(ctx context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := r.Clone()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.load(ctx, tx)
		if err != nil {
			return err
		}

		if !saved.IsPersisted() {
			saved.Assign(uuid.New(), s.clock.Now().UTC())
			items = append(items, saved)
			return s.save(ctx, tx, items)
		}

		replaced := false
		for i, existing := range items {
			if existing.ID() == saved.ID() {
				items[i] = saved
				replaced = true
				break
			}
		}
		if !replaced {
			if saved.CreatedAt().IsZero() {
				saved.Assign(saved.ID(), s.clock.Now().UTC())
			}
			items = append(items, saved)
		}
		return s.save(ctx, tx, items)
	})
	if err != nil {
		return nil, err
	}
	return saved.Clone(), nil
}

// Delete removes id if present.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		kept := items[:0]
		for _, r := range items {
			if r.ID() != id {
				kept = append(kept, r)
			}
		}
		return s.save(ctx, tx, kept)
	})
}

// load reads the document. A missing or unreadable document is an empty
// collection; corrupt data is logged rather than surfaced.
func (s *Store) load(ctx context.Context, db *gorm.DB) ([]*reservation.Reservation, error) {
	var entry Entry
	err := db.WithContext(ctx).Where(&Entry{Key: StorageKey}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*reservation.Reservation{}, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read local store", err)
	}

	var records []record
	if err := json.Unmarshal([]byte(entry.Value), &records); err != nil {
		s.logger.Warn("local store document is unreadable, treating it as empty", slog.String("error", err.Error()))
		return []*reservation.Reservation{}, nil
	}

	items := make([]*reservation.Reservation, 0, len(records))
	for _, rec := range records {
		r, err := rec.toDomain()
		if err != nil {
			s.logger.Warn("skipping unreadable local reservation",
				slog.String("id", rec.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		items = append(items, r)
	}
	sortByStart(items)
	return items, nil
}

func (s *Store) save(ctx context.Context, db *gorm.DB, items []*reservation.Reservation) error {
	sortByStart(items)
	records := make([]record, len(items))
	for i, r := range items {
		records[i] = toRecord(r)
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorruptData, "failed to encode local store", err)
	}

	entry := Entry{Key: StorageKey, Value: string(payload), UpdatedAt: s.clock.Now()}
	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to write local store", err)
	}
	return nil
}

func sortByStart(items []*reservation.Reservation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate().Before(items[j].StartDate())
	})
}
