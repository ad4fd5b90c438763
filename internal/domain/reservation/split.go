package reservation

import (
	"time"

	"github.com/google/uuid"
)

type RemovalOutcome string

const (
	RemovalNoop        RemovalOutcome = "noop"
	RemovalFullDelete  RemovalOutcome = "full-delete"
	RemovalShrinkStart RemovalOutcome = "shrink-start"
	RemovalShrinkEnd   RemovalOutcome = "shrink-end"
	RemovalSplit       RemovalOutcome = "split"
)

func (o RemovalOutcome) String() string {
	return string(o)
}

// RemovalPlan describes the store writes needed to take one day out of a stay.
//
//   - FullDelete: delete Target.
//   - ShrinkStart, ShrinkEnd: upsert Updated.
//   - Split: upsert Updated (first half, original id), then upsert Created
//     (second half, no id).
//   - Noop: nothing.
type RemovalPlan struct {
	Outcome RemovalOutcome
	Target  *Reservation
	Day     time.Time
	Updated *Reservation
	Created *Reservation
}

// PlanDayRemoval decides how removing day from r changes the reservation set.
// r is never modified; Updated and Created are fresh values.
func PlanDayRemoval(r *Reservation, day time.Time) RemovalPlan {
	del := NormalizeDay(day)
	start, end := r.stay.Start(), r.stay.End()
	plan := RemovalPlan{Outcome: RemovalNoop, Target: r, Day: del}

	switch {
	case !r.stay.Contains(del):
		return plan

	case start.Equal(end):
		plan.Outcome = RemovalFullDelete

	case del.Equal(start):
		plan.Outcome = RemovalShrinkStart
		plan.Updated = r.withStay(DateRange{start: AddDays(start, 1), end: end})

	case del.Equal(end):
		plan.Outcome = RemovalShrinkEnd
		plan.Updated = r.withStay(DateRange{start: start, end: AddDays(end, -1)})

	default:
		plan.Outcome = RemovalSplit
		plan.Updated = r.withStay(DateRange{start: start, end: AddDays(del, -1)})
		second := r.withStay(DateRange{start: AddDays(del, 1), end: end})
		second.id = uuid.Nil
		second.createdAt = time.Time{}
		plan.Created = second
	}
	return plan
}

// Result lists the reservations that remain after the plan is applied,
// in start order. Created entries carry no id until persisted.
func (p RemovalPlan) Result() []*Reservation {
	switch p.Outcome {
	case RemovalNoop:
		return []*Reservation{p.Target}
	case RemovalFullDelete:
		return nil
	case RemovalSplit:
		return []*Reservation{p.Updated, p.Created}
	default:
		return []*Reservation{p.Updated}
	}
}

func (p RemovalPlan) IsMutation() bool {
	return p.Outcome != RemovalNoop
}

func (r *Reservation) withStay(stay DateRange) *Reservation {
	c := r.Clone()
	c.stay = stay
	return c
}
