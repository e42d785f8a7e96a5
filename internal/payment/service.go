package payment

import (
	"context"
	"errors"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/metrics"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

type SubscriptionStore interface {
	GetByID(ctx context.Context, id int) (*subscription.Subscription, error)
	Activate(ctx context.Context, id int) (bool, error)
}

// Notifier delivers the purchase confirmation message. Implementations must
// not block; delivery failures never fail the confirmation.
type Notifier interface {
	PurchaseConfirmed(userID int, packageType string)
}

type NoopNotifier struct{}

func (NoopNotifier) PurchaseConfirmed(int, string) {}

type Service interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*Payment, error)
	ListMine(ctx context.Context, userID int) ([]Payment, error)
}

type service struct {
	repo     Repository
	subs     SubscriptionStore
	notifier Notifier
}

func NewService(repo Repository, subs SubscriptionStore, notifier Notifier) Service {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &service{repo: repo, subs: subs, notifier: notifier}
}

// Confirm records the provider callback and activates the paid subscription.
// Replays converge on the first result: the payment insert dedupes on the
// provider reference and the activation update only fires once.
func (s *service) Confirm(ctx context.Context, req ConfirmRequest) (*Payment, error) {
	sub, err := s.subs.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.RecordCompleted(ctx, sub.UserID, sub.ID, req.AmountCents, req.Method, req.ProviderReference)
	if errors.Is(err, apperrors.ErrAlreadyProcessed) {
		// A replay still drives the activation: the first delivery may have
		// recorded the payment and then failed before the subscription
		// flipped. The pending-status guard keeps this a no-op otherwise.
		logger.Infof("payment callback replayed for reference %s", req.ProviderReference)
		p, err = s.repo.GetByProviderReference(ctx, req.ProviderReference)
		if err != nil {
			return nil, err
		}
		if err := s.activate(ctx, sub, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.activate(ctx, sub, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) activate(ctx context.Context, sub *subscription.Subscription, p *Payment) error {
	activated, err := s.subs.Activate(ctx, sub.ID)
	if err != nil {
		return err
	}
	if activated {
		metrics.RecordPaymentConfirmation()
		logger.Infof("subscription %d activated by payment %d", sub.ID, p.ID)
		s.notifier.PurchaseConfirmed(sub.UserID, string(sub.PackageType))
	} else {
		logger.Warnf("payment %d recorded but subscription %d was not pending", p.ID, sub.ID)
	}

	return nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Payment, error) {
	return s.repo.ListByUser(ctx, userID)
}
