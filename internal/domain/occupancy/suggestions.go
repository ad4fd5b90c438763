package occupancy

import (
	"sort"
	"strings"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
)

// PetSuggestions returns one entry per known pet (animal name plus owner last
// name, case-insensitive), taken from that pet's most recent stay, for pets
// whose name contains query. Newest stays come first.
func PetSuggestions(all []*reservation.Reservation, query string, limit int) []reservation.Pet {
	latest := make(map[string]*reservation.Reservation)
	for _, r := range all {
		key := strings.ToLower(r.AnimalName()) + "|" + strings.ToLower(r.OwnerLastName())
		if cur, ok := latest[key]; !ok || r.StartDate().After(cur.StartDate()) {
			latest[key] = r
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	picked := make([]*reservation.Reservation, 0, len(latest))
	for _, r := range latest {
		if q == "" || strings.Contains(strings.ToLower(r.AnimalName()), q) {
			picked = append(picked, r)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		if !picked[i].StartDate().Equal(picked[j].StartDate()) {
			return picked[i].StartDate().After(picked[j].StartDate())
		}
		ni, nj := strings.ToLower(picked[i].AnimalName()), strings.ToLower(picked[j].AnimalName())
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(picked[i].OwnerLastName()) < strings.ToLower(picked[j].OwnerLastName())
	})

	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	out := make([]reservation.Pet, len(picked))
	for i, r := range picked {
		out[i] = r.Pet()
	}
	return out
}
