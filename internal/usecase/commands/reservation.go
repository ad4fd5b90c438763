package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReservation = errs.New("invalid reservation")
	ErrAlreadyCheckedOut  = errs.New("reservation already checked out")
)

// SaveReservationInput carries one create or edit. A nil ID creates.
// A nil End means a single-day stay.
type SaveReservationInput struct {
	ID             uuid.UUID
	AnimalName     string
	AnimalType     string
	OwnerFirstName string
	OwnerLastName  string
	Start          time.Time
	End            *time.Time
	Notes          string
}

type RemoveDayResult struct {
	Outcome reservation.RemovalOutcome
	// Remaining are the stored pieces of the original stay after the removal.
	Remaining []*reservation.Reservation
}

type ReservationCommands interface {
	Save(ctx context.Context, in SaveReservationInput) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RemoveDay(ctx context.Context, id uuid.UUID, day time.Time) (*RemoveDayResult, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	AddMedicationNote(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	store    shared.ReservationStore
	listener shared.ChangeListener
	logger   *slog.Logger
}

func NewReservationCommands(store shared.ReservationStore, listener shared.ChangeListener, logger *slog.Logger) ReservationCommands {
	if listener == nil {
		listener = shared.NopChangeListener{}
	}
	return &reservationCommandsImpl{
		store:    store,
		listener: listener,
		logger:   logger,
	}
}

func (c *reservationCommandsImpl) Save(ctx context.Context, in SaveReservationInput) (*reservation.Reservation, error) {
	pet, stay, notes, err := in.toDomain()
	if err != nil {
		return nil, err
	}

	var target *reservation.Reservation
	if in.ID == uuid.Nil {
		target, err = reservation.NewReservation(pet, stay, notes)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidReservation)
		}
	} else {
		existing, _, findErr := shared.FindReservation(ctx, c.store, in.ID)
		if findErr != nil {
			return nil, findErr
		}
		target = existing.Clone()
		if err := target.Edit(pet, stay, notes); err != nil {
			return nil, errs.Mark(err, ErrInvalidReservation)
		}
	}

	saved, err := c.store.Upsert(ctx, target)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	c.listener.ReservationsChanged()
	return saved, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return shared.StoreErr(err)
	}
	c.listener.ReservationsChanged()
	return nil
}

// RemoveDay takes one calendar day out of a stay. A split issues two
// upserts without a transaction; if the second fails the original stays
// shortened and the error is returned.
func (c *reservationCommandsImpl) RemoveDay(ctx context.Context, id uuid.UUID, day time.Time) (*RemoveDayResult, error) {
	target, _, err := shared.FindReservation(ctx, c.store, id)
	if err != nil {
		return nil, err
	}

	plan := reservation.PlanDayRemoval(target, day)
	result := &RemoveDayResult{Outcome: plan.Outcome}

	switch plan.Outcome {
	case reservation.RemovalNoop:
		result.Remaining = []*reservation.Reservation{target}
		return result, nil

	case reservation.RemovalFullDelete:
		if err := c.store.Delete(ctx, target.ID()); err != nil {
			return nil, shared.StoreErr(err)
		}

	case reservation.RemovalShrinkStart, reservation.RemovalShrinkEnd:
		updated, err := c.store.Upsert(ctx, plan.Updated)
		if err != nil {
			return nil, shared.StoreErr(err)
		}
		result.Remaining = []*reservation.Reservation{updated}

	case reservation.RemovalSplit:
		first, err := c.store.Upsert(ctx, plan.Updated)
		if err != nil {
			return nil, shared.StoreErr(err)
		}

		second, err := c.store.Upsert(ctx, plan.Created)
		if err != nil {
			c.listener.ReservationsChanged()
			c.logger.Error("split left original shortened without its second half",
				"reservation_id", target.ID().String(),
				"removed_day", reservation.FormatDay(plan.Day),
				"kept", first.Stay().String(),
				"error", err.Error(),
			)
			return nil, shared.StoreErr(err)
		}
		result.Remaining = []*reservation.Reservation{first, second}
	}

	c.listener.ReservationsChanged()
	c.logger.Info("day removed from reservation",
		"reservation_id", target.ID().String(),
		"outcome", plan.Outcome.String(),
		"day", reservation.FormatDay(plan.Day),
	)
	return result, nil
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	existing, _, err := shared.FindReservation(ctx, c.store, id)
	if err != nil {
		return nil, err
	}

	target := existing.Clone()
	if err := target.CheckOut(); err != nil {
		return nil, errs.Mark(err, ErrAlreadyCheckedOut)
	}

	saved, err := c.store.Upsert(ctx, target)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	c.listener.ReservationsChanged()
	return saved, nil
}

func (c *reservationCommandsImpl) AddMedicationNote(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	existing, _, err := shared.FindReservation(ctx, c.store, id)
	if err != nil {
		return nil, err
	}

	target := existing.Clone()
	target.AppendMedicationTemplate()

	saved, err := c.store.Upsert(ctx, target)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	c.listener.ReservationsChanged()
	return saved, nil
}

func (in SaveReservationInput) toDomain() (reservation.Pet, reservation.DateRange, reservation.Notes, error) {
	end := in.Start
	if in.End != nil {
		end = *in.End
	}
	stay, err := reservation.NewDateRange(in.Start, end)
	if err != nil {
		return reservation.Pet{}, reservation.DateRange{}, reservation.Notes{}, errs.Mark(err, ErrInvalidReservation)
	}

	pet := reservation.Pet{
		AnimalName:     in.AnimalName,
		AnimalType:     reservation.ParseAnimalType(in.AnimalType),
		OwnerFirstName: in.OwnerFirstName,
		OwnerLastName:  in.OwnerLastName,
	}
	return pet, stay, reservation.NewNotes(in.Notes), nil
}
