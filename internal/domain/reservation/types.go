package reservation

import (
	"strings"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
)

var (
	ErrInvalidDateRange  = errs.New("start date must not be after end date")
	ErrInvalidStatus     = errs.New("invalid reservation status")
	ErrAnimalNameEmpty   = errs.New("animal name is required")
	ErrOwnerNameEmpty    = errs.New("owner first and last name are required")
	ErrAlreadyCheckedOut = errs.New("reservation is already checked out")
	ErrNotPersisted      = errs.New("reservation has no id")
)

type AnimalType string

const (
	AnimalCat        AnimalType = "Cat"
	AnimalFerret     AnimalType = "Ferret"
	AnimalRabbit     AnimalType = "Rabbit"
	AnimalGuineaPig  AnimalType = "Guinea Pig"
	AnimalChinchilla AnimalType = "Chinchilla"
	AnimalRat        AnimalType = "Rat"
	AnimalOther      AnimalType = "Other"
)

// AnimalTypes lists the enumeration in display order.
var AnimalTypes = []AnimalType{
	AnimalCat,
	AnimalFerret,
	AnimalRabbit,
	AnimalGuineaPig,
	AnimalChinchilla,
	AnimalRat,
	AnimalOther,
}

func (a AnimalType) String() string {
	return string(a)
}

func (a AnimalType) IsValid() bool {
	for _, t := range AnimalTypes {
		if a == t {
			return true
		}
	}
	return false
}

// ParseAnimalType maps loosely formatted text onto the enumeration.
// Anything unrecognised becomes AnimalOther. Use it only where values enter
// the system (stores, request DTOs).
func ParseAnimalType(s string) AnimalType {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	for _, t := range AnimalTypes {
		if key == strings.ToLower(strings.ReplaceAll(string(t), " ", "")) {
			return t
		}
	}
	return AnimalOther
}

type Status string

const (
	StatusActive     Status = "active"
	StatusCheckedOut Status = "checked-out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// ParseStatus treats an empty value as active.
func ParseStatus(s string) (Status, error) {
	if strings.TrimSpace(s) == "" {
		return StatusActive, nil
	}
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
