package occupancy

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
)

// DailyBreakdown partitions the reservations touching one day.
// Arriving and Departing are computed independently, so a single-day stay
// shows up in both and never in StayingOvernight.
type DailyBreakdown struct {
	Day              time.Time
	Arriving         []*reservation.Reservation
	Departing        []*reservation.Reservation
	StayingOvernight []*reservation.Reservation
	Boarding         []*reservation.Reservation
	Types            []TypeCount
}

func (b DailyBreakdown) IsEmpty() bool {
	return len(b.Boarding) == 0
}

// Breakdown filters the collection by query and buckets what is left
// against day. Input order is preserved inside every bucket.
func Breakdown(all []*reservation.Reservation, day time.Time, query string) DailyBreakdown {
	d := reservation.NormalizeDay(day)
	filtered := Filter(all, query)

	b := DailyBreakdown{Day: d}
	for _, r := range filtered {
		if !r.OccupiesDay(d) {
			continue
		}
		b.Boarding = append(b.Boarding, r)

		arriving, departing := r.ArrivesOn(d), r.DepartsOn(d)
		if arriving {
			b.Arriving = append(b.Arriving, r)
		}
		if departing {
			b.Departing = append(b.Departing, r)
		}
		if !arriving && !departing {
			b.StayingOvernight = append(b.StayingOvernight, r)
		}
	}
	b.Types = TypeSummary(filtered, d)
	return b
}

// Occupying returns every reservation covering day.
func Occupying(all []*reservation.Reservation, day time.Time) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range all {
		if r.OccupiesDay(day) {
			out = append(out, r)
		}
	}
	return out
}

// Present is Occupying without animals that already left.
func Present(all []*reservation.Reservation, day time.Time) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range all {
		if r.OccupiesDay(day) && !r.IsCheckedOut() {
			out = append(out, r)
		}
	}
	return out
}

// Filter keeps reservations whose animal or owner names contain query.
func Filter(all []*reservation.Reservation, query string) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(all))
	for _, r := range all {
		if r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}
