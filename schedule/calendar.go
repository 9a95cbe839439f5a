// Package schedule generates the recurring personal calendar: two fixed
// morning habits every day plus an evening or full-day activity drawn from a
// rotating 4-week template. Generation is pure computation; persistence lives
// in database/schemas.
package schedule

import "time"

// Dates are carried as UTC midnights so day arithmetic is exact (no DST,
// every week is exactly 7*24h).

// ParseDate parses a YYYY-MM-DD string into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Midnight truncates t to its UTC calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday starting t's week. Monday is the first day of
// the week; a Sunday belongs to the week whose Monday is six days earlier.
func MondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Midnight(t).AddDate(0, 0, 1-wd)
}

// dayAbbrev returns the three-letter weekday key used by week templates
// ("Mon" .. "Sun").
func dayAbbrev(wd time.Weekday) string {
	return wd.String()[:3]
}
