package domain

import "time"

// DateLayout is the ISO date format used in provider queries.
const DateLayout = "2006-01-02"

// DateRange is a closed [From, To] interval at day granularity.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewDateRange validates that From does not lie after To.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return DateRange{}, &InvalidRangeError{From: from, To: to}
	}
	return DateRange{From: from, To: to}, nil
}

// ParseDateRange builds a range from two ISO date strings.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, &InvalidRangeError{Raw: from}
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, &InvalidRangeError{Raw: to}
	}
	return NewDateRange(f, t)
}

// Covers reports whether other lies entirely within r.
func (r DateRange) Covers(other DateRange) bool {
	return !other.From.Before(r.From) && !other.To.After(r.To)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
