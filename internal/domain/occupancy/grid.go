package occupancy

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
)

// GridCells is six Sunday-first weeks.
const GridCells = 42

type Cell struct {
	Day          time.Time
	InMonth      bool
	IsToday      bool
	Reservations []*reservation.Reservation
	Types        []TypeCount
}

// MonthGrid lays out the month starting on the Sunday on or before the 1st.
// Cells list the animals present that day; checked-out stays are hidden.
func MonthGrid(year int, month time.Month, all []*reservation.Reservation, today time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	todayDay := reservation.NormalizeDay(today)

	cells := make([]Cell, GridCells)
	for i := range cells {
		day := gridStart.AddDate(0, 0, i)
		cells[i] = Cell{
			Day:          day,
			InMonth:      day.Month() == month,
			IsToday:      day.Equal(todayDay),
			Reservations: Present(all, day),
			Types:        TypeSummary(all, day),
		}
	}
	return cells
}
