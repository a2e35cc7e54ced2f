// Package calendar holds the shared ISO-week date arithmetic. Every component
// that needs Monday/week-key math goes through here; nothing else in the
// repository hand-rolls it.
package calendar

import (
	"fmt"
	"regexp"
	"time"
)

// ISODateLayout is the canonical YYYY-MM-DD wire format for dates
const ISODateLayout = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MondayOf returns the Monday of the ISO week containing t, at midnight UTC.
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday numbers Sunday as 0; shift so Monday is the week start.
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// ISOWeekKey returns the ISO-8601 week identifier for t in the form
// "YYYY-Www". The year is the ISO week-year, which differs from the calendar
// year around year boundaries (e.g. 2018-12-31 is 2019-W01).
func ISOWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// IsISODate reports whether s matches the strict YYYY-MM-DD shape. It is a
// format check only; calendar validity is left to ParseISODate.
func IsISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

// ParseISODate parses a YYYY-MM-DD string as a midnight-UTC date.
func ParseISODate(s string) (time.Time, error) {
	if !IsISODate(s) {
		return time.Time{}, fmt.Errorf("invalid ISO date %q", s)
	}
	t, err := time.ParseInLocation(ISODateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// AddDays shifts an ISO date string by n days.
func AddDays(iso string, n int) (string, error) {
	t, err := ParseISODate(iso)
	if err != nil {
		return "", err
	}
	return FormatISODate(t.AddDate(0, 0, n)), nil
}

// SameISOWeek reports whether a and b fall in the same Monday-to-Sunday span.
func SameISOWeek(a, b time.Time) bool {
	return MondayOf(a).Equal(MondayOf(b))
}
