package reservation

import (
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

const (
	ReasonEarlyCancellation = "early_cancellation"
	ReasonLateCancellation  = "late_cancellation"
)

// CancellationDecision is the full outcome of the refund policy for one
// cancellation: the reservation transition plus the counter adjustments the
// store must apply in the same transaction.
type CancellationDecision struct {
	ReservationID  int
	ClassID        int
	SubscriptionID *int
	CanRefund      bool
	Reason         string
	CancelledAt    time.Time

	// DecrementUsed drops the class from the subscription's usage count.
	// RestoreRemaining returns the credit to the pool; for unlimited week
	// it is never set, whatever the notice given.
	DecrementUsed    bool
	RestoreRemaining bool
}

// DecideCancellation applies the refund policy. classStartsAt is the class's
// composed civil start instant. sub may be nil for reservations not bound to
// a package; those never carry a credit to restore.
func DecideCancellation(
	res *Reservation,
	sub *subscription.Subscription,
	classStartsAt time.Time,
	now time.Time,
	refundWindow time.Duration,
	reason string,
) (CancellationDecision, error) {
	if res.Status != StatusConfirmed {
		return CancellationDecision{}, apperrors.ErrAlreadyCancelled
	}

	early := classStartsAt.Sub(now) >= refundWindow

	decision := CancellationDecision{
		ReservationID:  res.ID,
		ClassID:        res.ScheduledClassID,
		SubscriptionID: res.SubscriptionID,
		CancelledAt:    now,
		Reason:         reason,
	}
	if decision.Reason == "" {
		if early {
			decision.Reason = ReasonEarlyCancellation
		} else {
			decision.Reason = ReasonLateCancellation
		}
	}

	if sub == nil {
		return decision, nil
	}

	if sub.IsUnlimitedWeek() {
		// Unlimited week never refunds: the class stops counting against
		// usage but the forfeited slot is not returned to the pool.
		decision.CanRefund = false
		decision.DecrementUsed = true
		decision.RestoreRemaining = false
		return decision, nil
	}

	if early {
		decision.CanRefund = true
		decision.DecrementUsed = true
		decision.RestoreRemaining = true
	}

	return decision, nil
}
