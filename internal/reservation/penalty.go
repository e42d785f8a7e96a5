package reservation

import (
	"fmt"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/schedule"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

// CascadePlan is the pure outcome of the no-show penalty: which transitions
// to apply. The store applies it in one transaction; the plan itself decides
// nothing at apply time.
type CascadePlan struct {
	MissedReservationID int
	MissedClassID       int

	// Set when a later confirmed reservation under the same subscription
	// exists. Exactly one reservation is ever penalized; the cascade never
	// recurses.
	PenalizedReservationID *int
	PenalizedClassID       *int
	PenaltyReason          string
}

func (p CascadePlan) Cascaded() bool {
	return p.PenalizedReservationID != nil
}

// PlanCascade decides the penalty for a missed unlimited week class. next is
// the user's earliest later confirmed reservation under the same
// subscription, or nil when there is none.
func PlanCascade(
	missed *Reservation,
	sub *subscription.Subscription,
	missedClass *schedule.ScheduledClass,
	next *Reservation,
) (CascadePlan, error) {
	if missed.Status != StatusConfirmed {
		return CascadePlan{}, apperrors.ErrAlreadyProcessed
	}

	if sub == nil || !sub.IsUnlimitedWeek() {
		return CascadePlan{}, apperrors.ErrNotUnlimitedWeek
	}

	plan := CascadePlan{
		MissedReservationID: missed.ID,
		MissedClassID:       missed.ScheduledClassID,
	}

	if next == nil {
		return plan, nil
	}

	plan.PenalizedReservationID = &next.ID
	plan.PenalizedClassID = &next.ScheduledClassID
	plan.PenaltyReason = fmt.Sprintf(
		"no_show_penalty: cancelled automatically after missing %s on %s at %s",
		missedClass.Name,
		missedClass.ClassDate.Format("2006-01-02"),
		missedClass.StartTime,
	)

	return plan, nil
}
