package subscription

import "time"

// WeekOption is a purchasable week candidate. Weeks the user already owns are
// included but flagged, so clients can explain why they cannot be selected.
type WeekOption struct {
	WeekStart        time.Time `json:"week_start"`
	WeekEnd          time.Time `json:"week_end"`
	AlreadyPurchased bool      `json:"already_purchased"`
}

// WeekOptions enumerates count consecutive purchasable weeks, oldest first.
// On Saturday and Sunday the current week is no longer offered; the window
// starts at the following Monday.
func WeekOptions(today time.Time, owned []Subscription, count int) []WeekOption {
	first := StartOfWeek(today)
	if !IsBusinessDay(today) {
		first = first.AddDate(0, 0, 7)
	}

	options := make([]WeekOption, 0, count)
	for i := 0; i < count; i++ {
		weekStart := first.AddDate(0, 0, 7*i)
		weekEnd, _ := WeekEnd(weekStart)

		options = append(options, WeekOption{
			WeekStart:        weekStart,
			WeekEnd:          weekEnd,
			AlreadyPurchased: ownsWeek(owned, weekStart),
		})
	}

	return options
}

func ownsWeek(owned []Subscription, weekStart time.Time) bool {
	for _, sub := range owned {
		if sub.WeekStart != nil && SameDate(*sub.WeekStart, weekStart) {
			return true
		}
	}
	return false
}
