package subscription

import (
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

// WeekEnd computes the fixed expiry of an unlimited week: the Friday of
// weekStart's week at end of day, in weekStart's location. weekStart must be
// a Monday.
func WeekEnd(weekStart time.Time) (time.Time, error) {
	if weekStart.Weekday() != time.Monday {
		return time.Time{}, apperrors.ErrInvalidWeekStart
	}

	friday := weekStart.AddDate(0, 0, 4)
	return time.Date(friday.Year(), friday.Month(), friday.Day(), 23, 59, 59, 0, friday.Location()), nil
}

// StartOfWeek returns the Monday of t's calendar week at midnight, in t's
// location. Sunday belongs to the week that started the previous Monday.
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// SameWeek reports whether a and b fall in the same Monday-start calendar
// week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// IsBusinessDay reports whether t falls on Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// SameDate compares two instants by calendar date only, normalized to UTC
// midnight so stored dates match regardless of the zone they were read in.
func SameDate(a, b time.Time) bool {
	return toUTCDate(a).Equal(toUTCDate(b))
}

// DateBefore reports whether a's calendar date is strictly earlier than b's.
func DateBefore(a, b time.Time) bool {
	return toUTCDate(a).Before(toUTCDate(b))
}

func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
