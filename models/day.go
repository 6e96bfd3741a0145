package models

import (
	"fmt"
	"time"
)

// DayKeyLayout is the wire format for calendar days ("YYYY-MM-DD").
const DayKeyLayout = "2006-01-02"

// Day is a calendar day with no time-of-day component, anchored to UTC.
// Daily records and streak comparisons are keyed by Day so that the day
// boundary never drifts with how individual timestamps are formatted.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{year: y, month: m, day: d}
}

// ParseDay parses a "YYYY-MM-DD" key.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DayOf(t), nil
}

// Key returns the "YYYY-MM-DD" form used as the record key.
func (d Day) Key() string {
	return d.Time().Format(DayKeyLayout)
}

// Time returns the day as UTC midnight.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(d.Time().AddDate(0, 0, 1))
}

// Prev returns the preceding calendar day.
func (d Day) Prev() Day {
	return DayOf(d.Time().AddDate(0, 0, -1))
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is later than other.
func (d Day) After(other Day) bool {
	return d.Time().After(other.Time())
}

func (d Day) String() string {
	return d.Key()
}
