package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

var studioTZ = mustLoadLocation("America/Mexico_City")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, studioTZ)
}

func TestWeekEnd(t *testing.T) {
	t.Run("monday maps to friday end of day", func(t *testing.T) {
		weekEnd, err := WeekEnd(date(2025, time.June, 2))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, time.June, 6, 23, 59, 59, 0, studioTZ), weekEnd)
	})

	t.Run("any monday works", func(t *testing.T) {
		mondays := []time.Time{
			date(2025, time.January, 6),
			date(2025, time.June, 30),   // week crossing a month boundary
			date(2025, time.December, 29), // week crossing a year boundary
		}
		for _, monday := range mondays {
			weekEnd, err := WeekEnd(monday)
			require.NoError(t, err)
			assert.Equal(t, time.Friday, weekEnd.Weekday())
			assert.Equal(t, 4, int(weekEnd.Sub(monday).Hours()/24))
		}
	})

	t.Run("non-monday rejected", func(t *testing.T) {
		_, err := WeekEnd(date(2025, time.June, 3))
		assert.ErrorIs(t, err, apperrors.ErrInvalidWeekStart)

		_, err = WeekEnd(date(2025, time.June, 8))
		assert.ErrorIs(t, err, apperrors.ErrInvalidWeekStart)
	})
}

func TestStartOfWeek(t *testing.T) {
	monday := date(2025, time.June, 2)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday is its own week start", monday},
		{"wednesday", date(2025, time.June, 4)},
		{"friday evening", time.Date(2025, time.June, 6, 21, 30, 0, 0, studioTZ)},
		{"saturday", date(2025, time.June, 7)},
		{"sunday belongs to the preceding monday", date(2025, time.June, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, StartOfWeek(tt.in))
		})
	}
}

func TestSameWeek(t *testing.T) {
	assert.True(t, SameWeek(date(2025, time.June, 2), date(2025, time.June, 6)))
	assert.False(t, SameWeek(date(2025, time.June, 2), date(2025, time.June, 9)))
	assert.False(t, SameWeek(date(2025, time.June, 6), date(2025, time.June, 9)))
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(date(2025, time.June, 2)))  // Monday
	assert.True(t, IsBusinessDay(date(2025, time.June, 6)))  // Friday
	assert.False(t, IsBusinessDay(date(2025, time.June, 7))) // Saturday
	assert.False(t, IsBusinessDay(date(2025, time.June, 8))) // Sunday
}

func TestSameDateAcrossZones(t *testing.T) {
	inStudio := date(2025, time.June, 2)
	inUTC := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(inStudio, inUTC))
	assert.False(t, SameDate(inStudio, inUTC.AddDate(0, 0, 1)))
}

func TestDateBefore(t *testing.T) {
	assert.True(t, DateBefore(date(2025, time.June, 1), date(2025, time.June, 2)))
	assert.False(t, DateBefore(date(2025, time.June, 2), date(2025, time.June, 2)))
	// Time of day is ignored; only the calendar date matters.
	late := time.Date(2025, time.June, 2, 23, 0, 0, 0, studioTZ)
	assert.False(t, DateBefore(late, date(2025, time.June, 2)))
}
