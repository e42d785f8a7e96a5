package schedule

import (
	"context"
	"time"
)

type Repository interface {
	CreateClass(ctx context.Context, name, instructor string, classDate time.Time, startTime string, durationMins, capacity int) (*ScheduledClass, error)
	GetByID(ctx context.Context, id int) (*ScheduledClass, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]ScheduledClass, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]ScheduledClass, error)
}
