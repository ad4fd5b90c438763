package response

import (
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/occupancy"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	AnimalName     string    `json:"animalName"`
	AnimalType     string    `json:"animalType"`
	OwnerFirstName string    `json:"ownerFirstName"`
	OwnerLastName  string    `json:"ownerLastName"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RemoveDayResponse struct {
	Outcome      string                `json:"outcome"`
	Reservations []ReservationResponse `json:"reservations"`
}

type PetSuggestionResponse struct {
	AnimalName     string `json:"animalName"`
	AnimalType     string `json:"animalType"`
	OwnerFirstName string `json:"ownerFirstName"`
	OwnerLastName  string `json:"ownerLastName"`
}

type TypeCountResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DailyBreakdownResponse struct {
	Date             string                `json:"date"`
	Arriving         []ReservationResponse `json:"arriving"`
	Departing        []ReservationResponse `json:"departing"`
	StayingOvernight []ReservationResponse `json:"stayingOvernight"`
	Boarding         []ReservationResponse `json:"boarding"`
	Types            []TypeCountResponse   `json:"types"`
}

type CalendarCellResponse struct {
	Date         string                `json:"date"`
	InMonth      bool                  `json:"inMonth"`
	IsToday      bool                  `json:"isToday"`
	Reservations []ReservationResponse `json:"reservations"`
	Types        []TypeCountResponse   `json:"types"`
}

type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Cells []CalendarCellResponse `json:"cells"`
}

func FromReservation(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID(),
		AnimalName:     r.AnimalName(),
		AnimalType:     r.AnimalType().String(),
		OwnerFirstName: r.OwnerFirstName(),
		OwnerLastName:  r.OwnerLastName(),
		StartDate:      reservation.FormatDay(r.StartDate()),
		EndDate:        reservation.FormatDay(r.EndDate()),
		Notes:          r.Notes().String(),
		Status:         r.Status().String(),
		CreatedAt:      r.CreatedAt(),
	}
}

// FromReservations never returns nil so empty lists encode as [].
func FromReservations(rs []*reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		out[i] = FromReservation(r)
	}
	return out
}

func FromRemoveDayResult(res *commands.RemoveDayResult) RemoveDayResponse {
	return RemoveDayResponse{
		Outcome:      res.Outcome.String(),
		Reservations: FromReservations(res.Remaining),
	}
}

func FromPets(pets []reservation.Pet) []PetSuggestionResponse {
	out := make([]PetSuggestionResponse, len(pets))
	for i, p := range pets {
		out[i] = PetSuggestionResponse{
			AnimalName:     p.AnimalName,
			AnimalType:     p.AnimalType.String(),
			OwnerFirstName: p.OwnerFirstName,
			OwnerLastName:  p.OwnerLastName,
		}
	}
	return out
}

func FromTypeCounts(tc []occupancy.TypeCount) []TypeCountResponse {
	out := make([]TypeCountResponse, len(tc))
	for i, t := range tc {
		out[i] = TypeCountResponse{Type: t.Type.String(), Count: t.Count}
	}
	return out
}

func FromDailyBreakdown(b *occupancy.DailyBreakdown) DailyBreakdownResponse {
	return DailyBreakdownResponse{
		Date:             reservation.FormatDay(b.Day),
		Arriving:         FromReservations(b.Arriving),
		Departing:        FromReservations(b.Departing),
		StayingOvernight: FromReservations(b.StayingOvernight),
		Boarding:         FromReservations(b.Boarding),
		Types:            FromTypeCounts(b.Types),
	}
}

func FromMonthGrid(year int, month time.Month, cells []occupancy.Cell) CalendarResponse {
	resp := CalendarResponse{
		Year:  year,
		Month: int(month),
		Cells: make([]CalendarCellResponse, len(cells)),
	}
	for i, c := range cells {
		resp.Cells[i] = CalendarCellResponse{
			Date:         reservation.FormatDay(c.Day),
			InMonth:      c.InMonth,
			IsToday:      c.IsToday,
			Reservations: FromReservations(c.Reservations),
			Types:        FromTypeCounts(c.Types),
		}
	}
	return resp
}
