package calendar_test

import (
	"testing"
	"time"

	"timesheet-backend/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"monday maps to itself", "2024-01-01", "2024-01-01"},
		{"midweek maps back", "2024-01-03", "2024-01-01"},
		{"sunday maps to the preceding monday", "2024-01-07", "2024-01-01"},
		{"across a month boundary", "2024-03-02", "2024-02-26"},
		{"across a year boundary", "2025-01-01", "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := calendar.ParseISODate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, calendar.FormatISODate(calendar.MondayOf(date)))
		})
	}
}

func TestMondayOfNormalizesToUTCMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Late evening in New York is already the next day in UTC; the week must
	// be derived from the civil date, not the instant.
	date := time.Date(2024, 1, 3, 23, 30, 0, 0, loc)
	monday := calendar.MondayOf(date)

	assert.Equal(t, "2024-01-01", calendar.FormatISODate(monday))
	assert.Equal(t, time.UTC, monday.Location())
	assert.Equal(t, 0, monday.Hour())
}

func TestISOWeekKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		// 2018-12-31 belongs to ISO week 1 of 2019
		{"2018-12-31", "2019-W01"},
		{"2019-01-06", "2019-W01"},
		// 2021-01-01 belongs to ISO week 53 of 2020
		{"2021-01-01", "2020-W53"},
		{"2024-06-12", "2024-W24"},
	}

	for _, tt := range tests {
		date, err := calendar.ParseISODate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, calendar.ISOWeekKey(date), "week key for %s", tt.date)
	}
}

func TestISOWeekKeyIsStableAcrossTheWeek(t *testing.T) {
	monday, err := calendar.ParseISODate("2024-06-10")
	require.NoError(t, err)

	want := calendar.ISOWeekKey(monday)
	for offset := 1; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		assert.Equal(t, want, calendar.ISOWeekKey(day))
		assert.True(t, calendar.SameISOWeek(monday, day))
	}

	nextMonday := monday.AddDate(0, 0, 7)
	assert.NotEqual(t, want, calendar.ISOWeekKey(nextMonday))
	assert.False(t, calendar.SameISOWeek(monday, nextMonday))
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		iso  string
		n    int
		want string
	}{
		{"2024-06-10", 6, "2024-06-16"},
		{"2024-06-10", -1, "2024-06-09"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2024-12-30", 7, "2025-01-06"},
	}

	for _, tt := range tests {
		got, err := calendar.AddDays(tt.iso, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %d days", tt.iso, tt.n)
	}

	_, err := calendar.AddDays("not-a-date", 1)
	assert.Error(t, err)
}

func TestIsISODate(t *testing.T) {
	assert.True(t, calendar.IsISODate("2024-01-15"))
	assert.True(t, calendar.IsISODate("1999-12-31"))

	assert.False(t, calendar.IsISODate("2024-1-15"))
	assert.False(t, calendar.IsISODate("15-01-2024"))
	assert.False(t, calendar.IsISODate("2024/01/15"))
	assert.False(t, calendar.IsISODate("2024-01-15T00:00:00Z"))
	assert.False(t, calendar.IsISODate(""))
}

func TestParseISODate(t *testing.T) {
	date, err := calendar.ParseISODate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, "2024-02-29", calendar.FormatISODate(date))

	// Not a leap year
	_, err = calendar.ParseISODate("2023-02-29")
	assert.Error(t, err)

	_, err = calendar.ParseISODate("2024-13-01")
	assert.Error(t, err)
}
