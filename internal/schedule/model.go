package schedule

import (
	"fmt"
	"time"
)

type ClassStatus string

const (
	StatusScheduled ClassStatus = "scheduled"
	StatusCancelled ClassStatus = "cancelled"
)

// ScheduledClass is one class occurrence on the studio calendar. The store
// keeps date and time-of-day in separate columns; StartsAt is composed once
// at the read boundary, in the studio's civil timezone, so nothing downstream
// re-derives offsets.
type ScheduledClass struct {
	ID             int         `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	Instructor     string      `db:"instructor" json:"instructor"`
	ClassDate      time.Time   `db:"class_date" json:"class_date"`
	StartTime      string      `db:"start_time" json:"start_time"`
	DurationMins   int         `db:"duration_mins" json:"duration_mins"`
	Capacity       int         `db:"capacity" json:"capacity"`
	AvailableSpots int         `db:"available_spots" json:"available_spots"`
	Status         ClassStatus `db:"status" json:"status"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`

	StartsAt time.Time `db:"-" json:"starts_at"`
}

// ComposeStartsAt builds the class's start instant from its stored date and
// time-of-day, in loc.
func (c *ScheduledClass) ComposeStartsAt(loc *time.Location) error {
	var hh, mm, ss int
	n, err := fmt.Sscanf(c.StartTime, "%d:%d:%d", &hh, &mm, &ss)
	if err != nil && n < 2 {
		return fmt.Errorf("malformed start_time %q: %w", c.StartTime, err)
	}

	c.StartsAt = time.Date(c.ClassDate.Year(), c.ClassDate.Month(), c.ClassDate.Day(), hh, mm, ss, 0, loc)
	return nil
}

type CreateClassRequest struct {
	Name         string `json:"name" binding:"required"`
	Instructor   string `json:"instructor" binding:"required"`
	ClassDate    string `json:"class_date" binding:"required,datetime=2006-01-02" example:"2025-06-02"`
	StartTime    string `json:"start_time" binding:"required,classtime" example:"09:00"`
	DurationMins int    `json:"duration_mins" binding:"required,min=15"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
}
