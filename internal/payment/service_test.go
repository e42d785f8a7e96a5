package payment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

func TestMain(m *testing.M) {
	logger.Init()

	os.Exit(m.Run())
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) RecordCompleted(ctx context.Context, userID, subscriptionID int, amountCents int64, method, providerReference string) (*Payment, error) {
	args := m.Called(ctx, userID, subscriptionID, amountCents, method, providerReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockPaymentRepo) GetByProviderReference(ctx context.Context, providerReference string) (*Payment, error) {
	args := m.Called(ctx, providerReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID int) ([]Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

type MockSubscriptionStore struct{ mock.Mock }

func (m *MockSubscriptionStore) GetByID(ctx context.Context, id int) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionStore) Activate(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PurchaseConfirmed(userID int, packageType string) {
	m.Called(userID, packageType)
}

func pendingWeekSub() *subscription.Subscription {
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2025, time.June, 6, 23, 59, 59, 0, time.UTC)
	return &subscription.Subscription{
		ID:            7,
		UserID:        3,
		PackageType:   subscription.TypeUnlimitedWeek,
		PaymentStatus: subscription.PaymentPending,
		WeekStart:     &weekStart,
		WeekEnd:       &weekEnd,
	}
}

func TestConfirmActivatesSubscription(t *testing.T) {
	repo := &MockPaymentRepo{}
	subs := &MockSubscriptionStore{}
	notifier := &MockNotifier{}
	svc := NewService(repo, subs, notifier)

	sub := pendingWeekSub()
	req := ConfirmRequest{SubscriptionID: 7, AmountCents: 119900, Method: "card", ProviderReference: "ch_abc123"}
	recorded := &Payment{ID: 1, UserID: 3, SubscriptionID: 7, AmountCents: 119900, Status: StatusCompleted, ProviderReference: "ch_abc123"}

	subs.On("GetByID", mock.Anything, 7).Return(sub, nil)
	repo.On("RecordCompleted", mock.Anything, 3, 7, int64(119900), "card", "ch_abc123").Return(recorded, nil)
	subs.On("Activate", mock.Anything, 7).Return(true, nil)
	notifier.On("PurchaseConfirmed", 3, "unlimited_week").Return()

	p, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
	notifier.AssertExpectations(t)
}

func TestConfirmReplayReturnsExistingPayment(t *testing.T) {
	repo := &MockPaymentRepo{}
	subs := &MockSubscriptionStore{}
	notifier := &MockNotifier{}
	svc := NewService(repo, subs, notifier)

	sub := pendingWeekSub()
	sub.PaymentStatus = subscription.PaymentPaid
	sub.IsActive = true
	req := ConfirmRequest{SubscriptionID: 7, AmountCents: 119900, Method: "card", ProviderReference: "ch_abc123"}
	existing := &Payment{ID: 1, UserID: 3, SubscriptionID: 7, Status: StatusCompleted, ProviderReference: "ch_abc123"}

	subs.On("GetByID", mock.Anything, 7).Return(sub, nil)
	repo.On("RecordCompleted", mock.Anything, 3, 7, int64(119900), "card", "ch_abc123").Return(nil, apperrors.ErrAlreadyProcessed)
	repo.On("GetByProviderReference", mock.Anything, "ch_abc123").Return(existing, nil)
	subs.On("Activate", mock.Anything, 7).Return(false, nil)

	p, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	notifier.AssertNotCalled(t, "PurchaseConfirmed", mock.Anything, mock.Anything)
}

func TestConfirmReplayActivatesAfterPartialFailure(t *testing.T) {
	repo := &MockPaymentRepo{}
	subs := &MockSubscriptionStore{}
	notifier := &MockNotifier{}
	svc := NewService(repo, subs, notifier)

	// First delivery records the payment but the activation errors out;
	// the provider retry must still flip the pending subscription.
	sub := pendingWeekSub()
	req := ConfirmRequest{SubscriptionID: 7, AmountCents: 119900, Method: "card", ProviderReference: "ch_abc123"}
	recorded := &Payment{ID: 1, UserID: 3, SubscriptionID: 7, Status: StatusCompleted, ProviderReference: "ch_abc123"}

	subs.On("GetByID", mock.Anything, 7).Return(sub, nil)
	repo.On("RecordCompleted", mock.Anything, 3, 7, int64(119900), "card", "ch_abc123").Return(recorded, nil).Once()
	subs.On("Activate", mock.Anything, 7).Return(false, assert.AnError).Once()

	_, err := svc.Confirm(context.Background(), req)
	require.Error(t, err)

	repo.On("RecordCompleted", mock.Anything, 3, 7, int64(119900), "card", "ch_abc123").Return(nil, apperrors.ErrAlreadyProcessed).Once()
	repo.On("GetByProviderReference", mock.Anything, "ch_abc123").Return(recorded, nil)
	subs.On("Activate", mock.Anything, 7).Return(true, nil).Once()
	notifier.On("PurchaseConfirmed", 3, "unlimited_week").Return()

	p, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	notifier.AssertExpectations(t)
	subs.AssertExpectations(t)
}

func TestConfirmUnknownSubscription(t *testing.T) {
	repo := &MockPaymentRepo{}
	subs := &MockSubscriptionStore{}
	svc := NewService(repo, subs, nil)

	subs.On("GetByID", mock.Anything, 99).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Confirm(context.Background(), ConfirmRequest{SubscriptionID: 99, AmountCents: 100, Method: "card", ProviderReference: "ch_x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "RecordCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmAlreadyActiveSubscriptionStillSucceeds(t *testing.T) {
	repo := &MockPaymentRepo{}
	subs := &MockSubscriptionStore{}
	notifier := &MockNotifier{}
	svc := NewService(repo, subs, notifier)

	sub := pendingWeekSub()
	sub.PaymentStatus = subscription.PaymentPaid
	req := ConfirmRequest{SubscriptionID: 7, AmountCents: 119900, Method: "card", ProviderReference: "ch_new"}
	recorded := &Payment{ID: 2, UserID: 3, SubscriptionID: 7, Status: StatusCompleted, ProviderReference: "ch_new"}

	subs.On("GetByID", mock.Anything, 7).Return(sub, nil)
	repo.On("RecordCompleted", mock.Anything, 3, 7, int64(119900), "card", "ch_new").Return(recorded, nil)
	subs.On("Activate", mock.Anything, 7).Return(false, nil)

	p, err := svc.Confirm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	notifier.AssertNotCalled(t, "PurchaseConfirmed", mock.Anything, mock.Anything)
}
