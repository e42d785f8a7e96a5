package reservation

import (
	"context"
	"time"
)

type Repository interface {
	CreateConfirmed(ctx context.Context, userID, classID int, subscriptionID, bikeNumber *int) (*Reservation, error)
	GetByID(ctx context.Context, id int) (*Reservation, error)
	ListByUser(ctx context.Context, userID int) ([]ReservationWithDetails, error)
	ListByClass(ctx context.Context, classID int) ([]ReservationWithDetails, error)
	CountConfirmedBySubscription(ctx context.Context, subscriptionID int) (int, error)
	CountConfirmedBySubscriptionOnDate(ctx context.Context, subscriptionID int, date time.Time) (int, error)
	HasConfirmedForUserAndClass(ctx context.Context, userID, classID int) (bool, error)
	FindNextConfirmed(ctx context.Context, subscriptionID int, afterDate time.Time, afterTime string, excludeID int) (*Reservation, error)
	ApplyCancellation(ctx context.Context, decision CancellationDecision) error
	ApplyCascade(ctx context.Context, plan CascadePlan, now time.Time) error
	MarkAttended(ctx context.Context, id int) error
}
