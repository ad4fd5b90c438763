package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Reservations []seedReservation `yaml:"reservations"`
}

type seedReservation struct {
	AnimalName     string `yaml:"animalName"`
	AnimalType     string `yaml:"animalType"`
	OwnerFirstName string `yaml:"ownerFirstName"`
	OwnerLastName  string `yaml:"ownerLastName"`
	StartDate      string `yaml:"startDate"`
	EndDate        string `yaml:"endDate"`
	Notes          string `yaml:"notes"`
	Status         string `yaml:"status"`
}

type seedEntry struct {
	Input      commands.SaveReservationInput
	CheckedOut bool
}

// parseSeed decodes and validates the whole file before anything is written.
func parseSeed(r io.Reader) ([]seedEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	entries := make([]seedEntry, 0, len(f.Reservations))
	for i, sr := range f.Reservations {
		req := reqdto.SaveReservationRequest{
			AnimalName:     sr.AnimalName,
			AnimalType:     sr.AnimalType,
			OwnerFirstName: sr.OwnerFirstName,
			OwnerLastName:  sr.OwnerLastName,
			StartDate:      sr.StartDate,
			Notes:          sr.Notes,
		}
		if strings.TrimSpace(sr.EndDate) != "" {
			end := sr.EndDate
			req.EndDate = &end
		}
		in, err := req.ToInput(uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("reservation %d (%s): %w", i+1, sr.AnimalName, err)
		}
		status, err := reservation.ParseStatus(sr.Status)
		if err != nil {
			return nil, fmt.Errorf("reservation %d (%s): %w", i+1, sr.AnimalName, err)
		}
		entries = append(entries, seedEntry{Input: in, CheckedOut: status == reservation.StatusCheckedOut})
	}
	return entries, nil
}

func applySeed(ctx context.Context, cmds commands.ReservationCommands, entries []seedEntry) (int, error) {
	for i, e := range entries {
		saved, err := cmds.Save(ctx, e.Input)
		if err != nil {
			return i, fmt.Errorf("save %s: %w", e.Input.AnimalName, err)
		}
		if e.CheckedOut {
			if _, err := cmds.CheckOut(ctx, saved.ID()); err != nil {
				return i, fmt.Errorf("check out %s: %w", e.Input.AnimalName, err)
			}
		}
	}
	return len(entries), nil
}
