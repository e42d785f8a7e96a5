package subscription

import (
	"context"
	"time"
)

type Repository interface {
	CreateUnlimitedWeek(ctx context.Context, userID int, weekStart, weekEnd time.Time, quota int) (*Subscription, error)
	CreatePack(ctx context.Context, userID int, ptype PackageType, quota int, validUntil time.Time) (*Subscription, error)
	GetByID(ctx context.Context, id int) (*Subscription, error)
	ListUnlimitedByUser(ctx context.Context, userID int) ([]Subscription, error)
	ListByUser(ctx context.Context, userID int) ([]Subscription, error)
	GetActiveForUser(ctx context.Context, userID int, now time.Time) (*Subscription, error)
	Activate(ctx context.Context, id int) (bool, error)
}
