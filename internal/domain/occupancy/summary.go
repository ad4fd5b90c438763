package occupancy

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
)

type TypeCount struct {
	Type  reservation.AnimalType
	Count int
}

// TypeSummary counts animals present on day by type, in order of first
// appearance. Checked-out reservations are left out.
func TypeSummary(all []*reservation.Reservation, day time.Time) []TypeCount {
	var out []TypeCount
	index := make(map[reservation.AnimalType]int)
	for _, r := range all {
		if r.IsCheckedOut() || !r.OccupiesDay(day) {
			continue
		}
		t := r.AnimalType()
		if i, ok := index[t]; ok {
			out[i].Count++
			continue
		}
		index[t] = len(out)
		out = append(out, TypeCount{Type: t, Count: 1})
	}
	return out
}
