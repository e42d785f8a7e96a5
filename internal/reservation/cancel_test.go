package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/subscription"
)

const refundWindow = 12 * time.Hour

func confirmedReservation(subscriptionID *int) *Reservation {
	return &Reservation{
		ID:               42,
		UserID:           3,
		ScheduledClassID: 10,
		SubscriptionID:   subscriptionID,
		Status:           StatusConfirmed,
	}
}

func packSub() *subscription.Subscription {
	validUntil := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	return &subscription.Subscription{
		ID:               9,
		UserID:           3,
		PackageType:      subscription.TypePack10,
		PaymentStatus:    subscription.PaymentPaid,
		IsActive:         true,
		ClassesUsed:      4,
		ClassesRemaining: 6,
		ValidUntil:       &validUntil,
	}
}

func TestDecideCancellationEarlyPackRefunds(t *testing.T) {
	loc := studioTZ(t)
	subID := 9
	res := confirmedReservation(&subID)

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)
	now := classStart.Add(-13 * time.Hour)

	d, err := DecideCancellation(res, packSub(), classStart, now, refundWindow, "")
	require.NoError(t, err)
	assert.True(t, d.CanRefund)
	assert.True(t, d.DecrementUsed)
	assert.True(t, d.RestoreRemaining)
	assert.Equal(t, ReasonEarlyCancellation, d.Reason)
}

func TestDecideCancellationLatePackForfeits(t *testing.T) {
	loc := studioTZ(t)
	subID := 9
	res := confirmedReservation(&subID)

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)
	now := classStart.Add(-2 * time.Hour)

	d, err := DecideCancellation(res, packSub(), classStart, now, refundWindow, "")
	require.NoError(t, err)
	assert.False(t, d.CanRefund)
	assert.False(t, d.DecrementUsed)
	assert.False(t, d.RestoreRemaining)
	assert.Equal(t, ReasonLateCancellation, d.Reason)
}

func TestDecideCancellationExactWindowBoundaryIsEarly(t *testing.T) {
	loc := studioTZ(t)
	subID := 9
	res := confirmedReservation(&subID)

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)
	now := classStart.Add(-refundWindow)

	d, err := DecideCancellation(res, packSub(), classStart, now, refundWindow, "")
	require.NoError(t, err)
	assert.True(t, d.CanRefund)
}

func TestDecideCancellationUnlimitedNeverRefunds(t *testing.T) {
	loc := studioTZ(t)
	subID := 7
	res := confirmedReservation(&subID)
	sub := paidWeekSub(loc, 2025, time.June, 2)

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)

	for name, now := range map[string]time.Time{
		"early": classStart.Add(-48 * time.Hour),
		"late":  classStart.Add(-1 * time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			d, err := DecideCancellation(res, sub, classStart, now, refundWindow, "")
			require.NoError(t, err)
			assert.False(t, d.CanRefund)
			assert.True(t, d.DecrementUsed)
			assert.False(t, d.RestoreRemaining)
		})
	}
}

func TestDecideCancellationAlreadyCancelled(t *testing.T) {
	loc := studioTZ(t)
	subID := 9
	res := confirmedReservation(&subID)
	res.Status = StatusCancelled

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)

	_, err := DecideCancellation(res, packSub(), classStart, classStart.Add(-24*time.Hour), refundWindow, "")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)
}

func TestDecideCancellationWithoutSubscription(t *testing.T) {
	loc := studioTZ(t)
	res := confirmedReservation(nil)

	classStart := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)

	d, err := DecideCancellation(res, nil, classStart, classStart.Add(-24*time.Hour), refundWindow, "schedule conflict")
	require.NoError(t, err)
	assert.False(t, d.CanRefund)
	assert.False(t, d.DecrementUsed)
	assert.False(t, d.RestoreRemaining)
	assert.Equal(t, "schedule conflict", d.Reason)
	assert.Nil(t, d.SubscriptionID)
}
