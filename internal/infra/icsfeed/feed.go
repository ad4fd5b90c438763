// Package icsfeed publishes reservations as an iCalendar feed so the
// boarding schedule can be subscribed to from any calendar app.
package icsfeed

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"

	ical "github.com/arran4/golang-ical"
)

const (
	ProductID    = "-//HPVC//Boarding Calendar//EN"
	CalendarName = "HPVC Boarding"
	uidDomain    = "boarding.hpvc"
)

// Build renders one all-day event per active reservation. DTEND is the day
// after the last boarded day, as iCalendar all-day ranges are exclusive.
func Build(all []*reservation.Reservation, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(CalendarName)

	for _, r := range all {
		if r.IsCheckedOut() || !r.IsPersisted() {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("%s@%s", r.ID(), uidDomain))
		ev.SetDtStampTime(stamp.UTC())
		if !r.CreatedAt().IsZero() {
			ev.SetCreatedTime(r.CreatedAt().UTC())
		}
		ev.SetAllDayStartAt(r.StartDate())
		ev.SetAllDayEndAt(reservation.AddDays(r.EndDate(), 1))
		ev.SetSummary(Summary(r))
		if notes := r.Notes().String(); notes != "" {
			ev.SetDescription(notes)
		}
	}
	return cal.Serialize()
}

// Summary is "Name (Type) - First Last".
func Summary(r *reservation.Reservation) string {
	owner := strings.TrimSpace(r.OwnerFirstName() + " " + r.OwnerLastName())
	return fmt.Sprintf("%s (%s) - %s", r.AnimalName(), r.AnimalType(), owner)
}
