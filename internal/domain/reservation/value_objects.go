package reservation

import (
	"strings"
	"time"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// NormalizeDay drops the time of day. The calendar date is read in t's own
// location and returned as midnight UTC so that normalized values compare
// with ==.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func IsSameCalendarDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}

func AddDays(day time.Time, n int) time.Time {
	return NormalizeDay(day).AddDate(0, 0, n)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDay(t), nil
}

func FormatDay(t time.Time) string {
	return NormalizeDay(t).Format(DayLayout)
}

// DateRange is an inclusive interval of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := NormalizeDay(start), NormalizeDay(end)
	if s.After(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

// SingleDay returns the one-day range used as the default for new stays.
func SingleDay(day time.Time) DateRange {
	d := NormalizeDay(day)
	return DateRange{start: d, end: d}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Contains(day time.Time) bool {
	d := NormalizeDay(day)
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) IsMultiDay() bool {
	return !r.start.Equal(r.end)
}

// Days counts occupied days, both ends included.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return FormatDay(r.start) + ".." + FormatDay(r.end)
}

type Notes struct {
	value string
}

const MedicationTemplate = "- MEDICATION: [Name], [Dosage], [Frequency]"

func NewNotes(s string) Notes {
	return Notes{value: strings.TrimSpace(s)}
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }

// WithMedicationTemplate appends the medication line on its own line.
func (n Notes) WithMedicationTemplate() Notes {
	if n.value == "" {
		return Notes{value: MedicationTemplate}
	}
	return Notes{value: n.value + "\n" + MedicationTemplate}
}
