package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/clock"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/metrics"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/schedule"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

type ClassStore interface {
	GetByID(ctx context.Context, id int) (*schedule.ScheduledClass, error)
}

type SubscriptionStore interface {
	GetActiveForUser(ctx context.Context, userID int, at time.Time) (*subscription.Subscription, error)
	GetByID(ctx context.Context, id int) (*subscription.Subscription, error)
}

// Notifier delivers booking lifecycle messages. Implementations must not
// block; delivery failures never fail the triggering operation.
type Notifier interface {
	ReservationConfirmed(userID int, className string, startsAt time.Time)
	ReservationCancelled(userID int, className string, startsAt time.Time, refunded bool)
	PenaltyApplied(userID int, missedClassName, penalizedClassName string)
}

type NoopNotifier struct{}

func (NoopNotifier) ReservationConfirmed(int, string, time.Time)       {}
func (NoopNotifier) ReservationCancelled(int, string, time.Time, bool) {}
func (NoopNotifier) PenaltyApplied(int, string, string)                {}

type Service interface {
	Book(ctx context.Context, userID int, req BookRequest) (*Reservation, error)
	Cancel(ctx context.Context, userID, reservationID int, reason string) (*CancellationDecision, error)
	ApplyNoShowPenalty(ctx context.Context, reservationID int) (*CascadePlan, error)
	MarkAttended(ctx context.Context, reservationID int) error
	ListMine(ctx context.Context, userID int) ([]ReservationWithDetails, error)
	ListByClass(ctx context.Context, classID int) ([]ReservationWithDetails, error)
}

type service struct {
	repo      Repository
	classes   ClassStore
	subs      SubscriptionStore
	validator Validator
	clock     clock.Clock
	loc       *time.Location
	refund    time.Duration
	notifier  Notifier
}

func NewService(
	repo Repository,
	classes ClassStore,
	subs SubscriptionStore,
	validator Validator,
	clk clock.Clock,
	loc *time.Location,
	refundWindow time.Duration,
	notifier Notifier,
) Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &service{
		repo:      repo,
		classes:   classes,
		subs:      subs,
		validator: validator,
		clock:     clk,
		loc:       loc,
		refund:    refundWindow,
		notifier:  notifier,
	}
}

func (s *service) Book(ctx context.Context, userID int, req BookRequest) (*Reservation, error) {
	now := s.clock.Now().In(s.loc)

	class, err := s.classes.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if !class.StartsAt.After(now) {
		metrics.RecordReservation("rejected")
		return nil, apperrors.New(apperrors.KindValidation, apperrors.CodeInvalidClassTime, "class has already started")
	}

	// The package must cover the class occurrence, not the present moment,
	// so a week purchased in advance is bookable before it begins.
	sub, err := s.subs.GetActiveForUser(ctx, userID, class.StartsAt)
	if err != nil && !errors.Is(err, apperrors.ErrNoActivePackage) {
		return nil, err
	}
	if sub == nil {
		// No package covers the class occurrence. Diagnose against the
		// package active today so a week mismatch reports the real reason
		// instead of a missing package.
		current, err := s.subs.GetActiveForUser(ctx, userID, now)
		if err != nil && !errors.Is(err, apperrors.ErrNoActivePackage) {
			return nil, err
		}
		if current != nil && !current.IsUnlimitedWeek() {
			// A standard pack active today that does not reach the class
			// date: its validity ends before the class starts.
			metrics.RecordReservation("rejected")
			return nil, apperrors.ErrPackageExpired
		}
		sub = current
	}

	if sub == nil || sub.IsUnlimitedWeek() {
		if err := s.validateUnlimited(ctx, now, userID, sub, class); err != nil {
			metrics.RecordReservation("rejected")
			return nil, err
		}
	} else {
		if err := s.validatePack(ctx, now, userID, sub, class); err != nil {
			metrics.RecordReservation("rejected")
			return nil, err
		}
	}

	rsv, err := s.repo.CreateConfirmed(ctx, userID, class.ID, &sub.ID, req.BikeNumber)
	if err != nil {
		metrics.RecordReservation("rejected")
		return nil, err
	}

	metrics.RecordReservation("confirmed")
	logger.Infof("reservation %d confirmed: user %d, class %d", rsv.ID, userID, class.ID)
	s.notifier.ReservationConfirmed(userID, class.Name, class.StartsAt)

	return rsv, nil
}

func (s *service) validateUnlimited(ctx context.Context, now time.Time, userID int, sub *subscription.Subscription, class *schedule.ScheduledClass) error {
	usage := Usage{}
	alreadyReserved := false

	if sub != nil {
		weekly, err := s.repo.CountConfirmedBySubscription(ctx, sub.ID)
		if err != nil {
			return err
		}
		daily, err := s.repo.CountConfirmedBySubscriptionOnDate(ctx, sub.ID, class.ClassDate)
		if err != nil {
			return err
		}
		usage = Usage{Weekly: weekly, Daily: daily}

		alreadyReserved, err = s.repo.HasConfirmedForUserAndClass(ctx, userID, class.ID)
		if err != nil {
			return err
		}
	}

	return s.validator.Validate(now, sub, class, usage, alreadyReserved)
}

func (s *service) validatePack(ctx context.Context, now time.Time, userID int, sub *subscription.Subscription, class *schedule.ScheduledClass) error {
	if sub.PaymentStatus != subscription.PaymentPaid || !sub.IsActive {
		return apperrors.ErrNoActivePackage
	}
	if sub.IsExpired(now) {
		return apperrors.ErrPackageExpired
	}

	alreadyReserved, err := s.repo.HasConfirmedForUserAndClass(ctx, userID, class.ID)
	if err != nil {
		return err
	}
	if alreadyReserved {
		return apperrors.ErrAlreadyReserved
	}
	if class.AvailableSpots <= 0 {
		return apperrors.ErrClassFull
	}

	return nil
}

func (s *service) Cancel(ctx context.Context, userID, reservationID int, reason string) (*CancellationDecision, error) {
	now := s.clock.Now().In(s.loc)

	res, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	class, err := s.classes.GetByID(ctx, res.ScheduledClassID)
	if err != nil {
		return nil, err
	}

	var sub *subscription.Subscription
	if res.SubscriptionID != nil {
		sub, err = s.subs.GetByID(ctx, *res.SubscriptionID)
		if err != nil {
			return nil, err
		}
	}

	decision, err := DecideCancellation(res, sub, class.StartsAt, now, s.refund, reason)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyCancellation(ctx, decision); err != nil {
		return nil, err
	}

	metrics.RecordCancellation(decision.CanRefund)
	logger.Infof("reservation %d cancelled: refund=%t reason=%s", res.ID, decision.CanRefund, decision.Reason)
	s.notifier.ReservationCancelled(userID, class.Name, class.StartsAt, decision.CanRefund)

	return &decision, nil
}

// ApplyNoShowPenalty marks the reservation as a no-show and, for unlimited
// week subscriptions, cancels the user's next confirmed reservation on the
// same package without refund.
func (s *service) ApplyNoShowPenalty(ctx context.Context, reservationID int) (*CascadePlan, error) {
	now := s.clock.Now().In(s.loc)

	missed, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	class, err := s.classes.GetByID(ctx, missed.ScheduledClassID)
	if err != nil {
		return nil, err
	}

	var sub *subscription.Subscription
	if missed.SubscriptionID != nil {
		sub, err = s.subs.GetByID(ctx, *missed.SubscriptionID)
		if err != nil {
			return nil, err
		}
	}

	var next *Reservation
	if sub != nil && sub.IsUnlimitedWeek() && missed.Status == StatusConfirmed {
		next, err = s.repo.FindNextConfirmed(ctx, sub.ID, class.ClassDate, class.StartTime, missed.ID)
		if err != nil {
			return nil, err
		}
	}

	plan, err := PlanCascade(missed, sub, class, next)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyCascade(ctx, plan, now); err != nil {
		return nil, err
	}

	metrics.RecordPenalty(plan.Cascaded())
	if plan.Cascaded() {
		penalized, err := s.classes.GetByID(ctx, *plan.PenalizedClassID)
		if err != nil {
			logger.Errorf("penalty applied but class %d lookup failed: %v", *plan.PenalizedClassID, err)
		} else {
			logger.Infof("no-show penalty: reservation %d cancelled after missed reservation %d", *plan.PenalizedReservationID, missed.ID)
			s.notifier.PenaltyApplied(missed.UserID, class.Name, penalized.Name)
		}
	} else {
		logger.Infof("no-show recorded for reservation %d, no later reservation to penalize", missed.ID)
	}

	return &plan, nil
}

func (s *service) MarkAttended(ctx context.Context, reservationID int) error {
	if _, err := s.repo.GetByID(ctx, reservationID); err != nil {
		return err
	}
	return s.repo.MarkAttended(ctx, reservationID)
}

func (s *service) ListMine(ctx context.Context, userID int) ([]ReservationWithDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListByClass(ctx context.Context, classID int) ([]ReservationWithDetails, error) {
	return s.repo.ListByClass(ctx, classID)
}
