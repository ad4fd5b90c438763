package request

import (
	"strings"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrInvalidDate = errs.New("dates must use the YYYY-MM-DD format")

// SaveReservationRequest is used for both create and update. An omitted or
// empty endDate means a single-day stay.
type SaveReservationRequest struct {
	AnimalName     string  `json:"animalName" binding:"required"`
	AnimalType     string  `json:"animalType"`
	OwnerFirstName string  `json:"ownerFirstName" binding:"required"`
	OwnerLastName  string  `json:"ownerLastName" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        *string `json:"endDate,omitempty"`
	Notes          string  `json:"notes"`
}

func (r SaveReservationRequest) ToInput(id uuid.UUID) (commands.SaveReservationInput, error) {
	var in commands.SaveReservationInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.SaveReservationInput{}, err
	}
	in.ID = id

	start, err := ParseDate(r.StartDate)
	if err != nil {
		return commands.SaveReservationInput{}, err
	}
	in.Start = start

	if r.EndDate != nil && strings.TrimSpace(*r.EndDate) != "" {
		end, err := ParseDate(*r.EndDate)
		if err != nil {
			return commands.SaveReservationInput{}, err
		}
		in.End = &end
	}
	return in, nil
}

type RemoveDayRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r RemoveDayRequest) Day() (time.Time, error) {
	return ParseDate(r.Date)
}

// ParseDate accepts YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := reservation.ParseDay(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return d, nil
}
