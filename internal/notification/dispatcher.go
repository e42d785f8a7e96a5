package notification

import (
	"context"
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/user"
)

type UserStore interface {
	FindByID(ctx context.Context, id int) (*user.User, error)
}

// Dispatcher resolves recipients and queues domain messages. Every call
// returns immediately; lookups and enqueueing run in the background and
// failures are only logged.
type Dispatcher struct {
	svc     *Service
	users   UserStore
	timeout time.Duration
}

func NewDispatcher(svc *Service, users UserStore) *Dispatcher {
	return &Dispatcher{svc: svc, users: users, timeout: 5 * time.Second}
}

func (d *Dispatcher) dispatch(userID int, send func(ctx context.Context, email, name string) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		u, err := d.users.FindByID(ctx, userID)
		if err != nil {
			logger.Errorf("notification dropped: user %d lookup failed: %v", userID, err)
			return
		}

		if err := send(ctx, u.Email, u.Name); err != nil {
			logger.Errorf("notification dropped for user %d: %v", userID, err)
		}
	}()
}

func (d *Dispatcher) ReservationConfirmed(userID int, className string, startsAt time.Time) {
	d.dispatch(userID, func(ctx context.Context, email, name string) error {
		return d.svc.SendReservationConfirmed(ctx, email, name, className, startsAt)
	})
}

func (d *Dispatcher) ReservationCancelled(userID int, className string, startsAt time.Time, refunded bool) {
	d.dispatch(userID, func(ctx context.Context, email, name string) error {
		return d.svc.SendReservationCancelled(ctx, email, name, className, startsAt, refunded)
	})
}

func (d *Dispatcher) PenaltyApplied(userID int, missedClassName, penalizedClassName string) {
	d.dispatch(userID, func(ctx context.Context, email, name string) error {
		return d.svc.SendPenaltyApplied(ctx, email, name, missedClassName, penalizedClassName)
	})
}

func (d *Dispatcher) PurchaseConfirmed(userID int, packageType string) {
	packageName := packageType
	if plan, err := subscription.FindPlan(packageType); err == nil {
		packageName = plan.Name
	}
	d.dispatch(userID, func(ctx context.Context, email, name string) error {
		return d.svc.SendPurchaseConfirmed(ctx, email, name, packageName)
	})
}

// Welcome already has the recipient at hand, so it skips the lookup.
func (d *Dispatcher) Welcome(email, name string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.svc.SendWelcome(ctx, email, name); err != nil {
			logger.Errorf("welcome notification dropped for %s: %v", email, err)
		}
	}()
}
