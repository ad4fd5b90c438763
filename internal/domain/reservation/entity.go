package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pet identifies the boarded animal and its owner.
type Pet struct {
	AnimalName     string
	AnimalType     AnimalType
	OwnerFirstName string
	OwnerLastName  string
}

func (p Pet) normalized() (Pet, error) {
	p.AnimalName = strings.TrimSpace(p.AnimalName)
	p.OwnerFirstName = strings.TrimSpace(p.OwnerFirstName)
	p.OwnerLastName = strings.TrimSpace(p.OwnerLastName)
	if p.AnimalName == "" {
		return Pet{}, ErrAnimalNameEmpty
	}
	if p.OwnerFirstName == "" || p.OwnerLastName == "" {
		return Pet{}, ErrOwnerNameEmpty
	}
	if !p.AnimalType.IsValid() {
		p.AnimalType = AnimalOther
	}
	return p, nil
}

// Reservation is one boarding stay. A zero id means the store has not seen it yet.
type Reservation struct {
	id        uuid.UUID
	pet       Pet
	stay      DateRange
	notes     Notes
	status    Status
	createdAt time.Time
}

// NewReservation builds an unpersisted, active reservation.
func NewReservation(pet Pet, stay DateRange, notes Notes) (*Reservation, error) {
	p, err := pet.normalized()
	if err != nil {
		return nil, err
	}
	return &Reservation{
		pet:    p,
		stay:   stay,
		notes:  notes,
		status: StatusActive,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	pet Pet,
	stay DateRange,
	notes Notes,
	status Status,
	createdAt time.Time,
) (*Reservation, error) {
	p, err := pet.normalized()
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:        id,
		pet:       p,
		stay:      stay,
		notes:     notes,
		status:    status,
		createdAt: createdAt,
	}, nil
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Pet() Pet               { return r.pet }
func (r *Reservation) AnimalName() string     { return r.pet.AnimalName }
func (r *Reservation) AnimalType() AnimalType { return r.pet.AnimalType }
func (r *Reservation) OwnerFirstName() string { return r.pet.OwnerFirstName }
func (r *Reservation) OwnerLastName() string  { return r.pet.OwnerLastName }
func (r *Reservation) Stay() DateRange        { return r.stay }
func (r *Reservation) StartDate() time.Time   { return r.stay.Start() }
func (r *Reservation) EndDate() time.Time     { return r.stay.End() }
func (r *Reservation) Notes() Notes           { return r.notes }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }

func (r *Reservation) IsPersisted() bool {
	return r.id != uuid.Nil
}

func (r *Reservation) IsCheckedOut() bool {
	return r.status == StatusCheckedOut
}

func (r *Reservation) OccupiesDay(day time.Time) bool {
	return r.stay.Contains(day)
}

func (r *Reservation) IsMultiDay() bool {
	return r.stay.IsMultiDay()
}

func (r *Reservation) ArrivesOn(day time.Time) bool {
	return IsSameCalendarDay(r.stay.Start(), day)
}

func (r *Reservation) DepartsOn(day time.Time) bool {
	return IsSameCalendarDay(r.stay.End(), day)
}

// Assign is called by stores after the first insert.
func (r *Reservation) Assign(id uuid.UUID, createdAt time.Time) {
	r.id = id
	r.createdAt = createdAt
}

// Edit replaces the mutable descriptive fields. Status is untouched.
func (r *Reservation) Edit(pet Pet, stay DateRange, notes Notes) error {
	p, err := pet.normalized()
	if err != nil {
		return err
	}
	r.pet = p
	r.stay = stay
	r.notes = notes
	return nil
}

func (r *Reservation) Reschedule(stay DateRange) {
	r.stay = stay
}

func (r *Reservation) AppendMedicationTemplate() {
	r.notes = r.notes.WithMedicationTemplate()
}

// CheckOut is terminal.
func (r *Reservation) CheckOut() error {
	if r.status == StatusCheckedOut {
		return ErrAlreadyCheckedOut
	}
	r.status = StatusCheckedOut
	return nil
}

// Clone returns an independent copy with the same identity.
func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}

// Matches reports whether the query is a case-insensitive substring of the
// animal name or either owner name. An empty query matches everything.
func (r *Reservation) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.pet.AnimalName), q) ||
		strings.Contains(strings.ToLower(r.pet.OwnerFirstName), q) ||
		strings.Contains(strings.ToLower(r.pet.OwnerLastName), q)
}
