package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
)

// LongDate renders a day as "Monday, June 3, 2024".
func LongDate(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}

// BuildPrompt assembles the handover request. Arrivals and departures come
// from the full reservation list; the boarder list is used as given.
func BuildPrompt(boarders []*reservation.Reservation, day time.Time, all []*reservation.Reservation) string {
	var checkIns, checkOuts []*reservation.Reservation
	for _, r := range all {
		if r.ArrivesOn(day) {
			checkIns = append(checkIns, r)
		}
		if r.DepartsOn(day) {
			checkOuts = append(checkOuts, r)
		}
	}

	var b strings.Builder
	b.WriteString("You are an assistant at a veterinary clinic. Your task is to generate a concise and professional daily handover summary for the next shift.\n")
	b.WriteString("The summary should be easy to read and highlight any important information. Start with arrivals and departures, then provide the full summary for all animals present today.\n\n")
	fmt.Fprintf(&b, "Today is: %s\n\n", LongDate(day))
	fmt.Fprintf(&b, "**Animals Checking In Today:**\n%s\n\n", formatLines(checkIns))
	fmt.Fprintf(&b, "**Animals Checking Out Today:**\n%s\n\n", formatLines(checkOuts))
	fmt.Fprintf(&b, "**Full List of Boarders Present Today:**\n%s\n\n", formatLines(boarders))
	b.WriteString("Please generate the handover summary based on the information above.\n")
	b.WriteString("- Start with a clear, friendly opening.\n")
	b.WriteString("- List any animals arriving today.\n")
	b.WriteString("- List any animals departing today.\n")
	b.WriteString("- Then, provide a brief but comprehensive summary for all animals that are staying, paying special attention to any notes (medication, diet, behavior).\n")
	b.WriteString("- IMPORTANT: Stick strictly to the information provided. Do not make any statements about how a pet is feeling or doing (e.g., \"is happy,\" \"is settling in well\"), as you do not have this information. Only report the facts from the notes.\n")
	b.WriteString("- Conclude with a friendly closing.\n")
	return b.String()
}

// FormatLine renders "- Name (Type). Notes: X".
func FormatLine(r *reservation.Reservation) string {
	notes := r.Notes().String()
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf("- %s (%s). Notes: %s", r.AnimalName(), r.AnimalType(), notes)
}

func formatLines(rs []*reservation.Reservation) string {
	if len(rs) == 0 {
		return "None."
	}
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = FormatLine(r)
	}
	return strings.Join(lines, "\n")
}
