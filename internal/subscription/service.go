package subscription

import (
	"context"
	"time"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/clock"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/metrics"
)

const packValidityDays = 30

type Service interface {
	WeekOptions(ctx context.Context, userID int) ([]WeekOption, error)
	PurchaseWeek(ctx context.Context, userID int, weekStart time.Time) (*Subscription, error)
	PurchasePack(ctx context.Context, userID int, ptype PackageType) (*Subscription, error)
	ListMine(ctx context.Context, userID int) ([]Subscription, error)
}

type service struct {
	repo            Repository
	clock           clock.Clock
	loc             *time.Location
	weeklyQuota     int
	maxFutureWeeks  int
	weekOptionCount int
}

func NewService(repo Repository, clk clock.Clock, loc *time.Location, weeklyQuota, maxFutureWeeks, weekOptionCount int) Service {
	return &service{
		repo:            repo,
		clock:           clk,
		loc:             loc,
		weeklyQuota:     weeklyQuota,
		maxFutureWeeks:  maxFutureWeeks,
		weekOptionCount: weekOptionCount,
	}
}

func (s *service) WeekOptions(ctx context.Context, userID int) ([]WeekOption, error) {
	owned, err := s.repo.ListUnlimitedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().In(s.loc)
	return WeekOptions(today, owned, s.weekOptionCount), nil
}

// PurchaseWeek enforces the purchase-time invariants and creates a pending
// unlimited week subscription. Activation happens separately when the payment
// provider confirms.
func (s *service) PurchaseWeek(ctx context.Context, userID int, weekStart time.Time) (*Subscription, error) {
	weekEnd, err := WeekEnd(weekStart)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListUnlimitedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().In(s.loc)

	for _, sub := range existing {
		if sub.WeekStart != nil && SameDate(*sub.WeekStart, weekStart) {
			return nil, apperrors.ErrDuplicateWeek
		}
	}

	if active := activeSubscription(existing, today); active != nil {
		futureCount := 0
		for _, sub := range existing {
			if sub.WeekStart != nil && sub.WeekStart.After(*active.WeekEnd) {
				futureCount++
			}
		}
		if futureCount >= s.maxFutureWeeks && weekStart.After(*active.WeekEnd) {
			return nil, apperrors.ErrTooManyAdvancePurchases
		}
	}

	if DateBefore(weekStart, today) {
		return nil, apperrors.ErrPastWeek
	}

	sub, err := s.repo.CreateUnlimitedWeek(ctx, userID, weekStart, weekEnd, s.weeklyQuota)
	if err != nil {
		return nil, err
	}

	metrics.RecordWeekPurchase()
	return sub, nil
}

func (s *service) PurchasePack(ctx context.Context, userID int, ptype PackageType) (*Subscription, error) {
	plan, err := FindPlan(string(ptype))
	if err != nil {
		return nil, err
	}
	if plan.Type == TypeUnlimitedWeek {
		return nil, apperrors.New(apperrors.KindValidation, apperrors.CodeUnknownPackageType, "unlimited week requires a week to be selected")
	}

	validUntil := s.clock.Now().In(s.loc).AddDate(0, 0, packValidityDays)
	return s.repo.CreatePack(ctx, userID, plan.Type, plan.ClassQuota, validUntil)
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Subscription, error) {
	return s.repo.ListByUser(ctx, userID)
}

// activeSubscription finds the subscription whose week covers today, if any.
func activeSubscription(subs []Subscription, today time.Time) *Subscription {
	for i := range subs {
		if subs[i].CoversInstant(today) {
			return &subs[i]
		}
	}
	return nil
}
