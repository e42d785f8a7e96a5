package reservation

import (
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/schedule"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

// Usage is the quota consumption of a subscription, computed from its
// confirmed reservations. The counters cached on the subscription row are a
// projection; decisions are made against these counts.
type Usage struct {
	Weekly int
	Daily  int
}

// Validator decides whether a booking is permitted under an unlimited week
// subscription. The checks run in a fixed order and the first failure wins.
type Validator struct {
	WeeklyLimit int
	DailyLimit  int
}

func NewValidator(weeklyLimit, dailyLimit int) Validator {
	return Validator{WeeklyLimit: weeklyLimit, DailyLimit: dailyLimit}
}

// Validate is a pure decision over pre-fetched state; it performs no I/O.
// alreadyReserved reports whether the user holds a confirmed reservation for
// this class occurrence.
func (v Validator) Validate(
	now time.Time,
	sub *subscription.Subscription,
	class *schedule.ScheduledClass,
	usage Usage,
	alreadyReserved bool,
) error {
	if sub == nil || !sub.IsActive || sub.PaymentStatus != subscription.PaymentPaid {
		return apperrors.ErrNoActivePackage
	}

	if sub.WeekEnd != nil && now.After(*sub.WeekEnd) {
		return apperrors.ErrPackageExpired
	}

	// The defining rule: the subscription is valid only for the exact week
	// purchased, never a rolling window.
	if sub.WeekStart != nil && !subscription.SameWeek(class.StartsAt, *sub.WeekStart) {
		return apperrors.ErrWrongWeek
	}

	if !subscription.IsBusinessDay(class.StartsAt) {
		return apperrors.ErrNonBusinessDay
	}

	if usage.Weekly >= v.WeeklyLimit {
		return apperrors.ErrWeeklyLimitExceeded
	}

	if usage.Daily >= v.DailyLimit {
		return apperrors.ErrDailyLimitExceeded
	}

	if alreadyReserved {
		return apperrors.ErrAlreadyReserved
	}

	if class.AvailableSpots <= 0 {
		return apperrors.ErrClassFull
	}

	return nil
}
