package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const subscriptionColumns = `id, user_id, package_type, payment_status, is_active, classes_used, classes_remaining, week_start, week_end, valid_until, created_at, updated_at`

func (r *repository) CreateUnlimitedWeek(ctx context.Context, userID int, weekStart, weekEnd time.Time, quota int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (user_id, package_type, payment_status, is_active, classes_used, classes_remaining, week_start, week_end)
		VALUES ($1, 'unlimited_week', 'pending', false, 0, $2, $3, $4)
		RETURNING `+subscriptionColumns+`
	`, userID, quota, weekStart, weekEnd).StructScan(sub)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *repository) CreatePack(ctx context.Context, userID int, ptype PackageType, quota int, validUntil time.Time) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (user_id, package_type, payment_status, is_active, classes_used, classes_remaining, valid_until)
		VALUES ($1, $2, 'pending', false, 0, $3, $4)
		RETURNING `+subscriptionColumns+`
	`, userID, ptype, quota, validUntil).StructScan(sub)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return sub, nil
}

func (r *repository) ListUnlimitedByUser(ctx context.Context, userID int) ([]Subscription, error) {
	subs := []Subscription{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1 AND package_type = 'unlimited_week'
		ORDER BY week_start ASC
	`, userID)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Subscription, error) {
	subs := []Subscription{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

// GetActiveForUser returns the paid, active subscription usable at now:
// an unlimited week whose window covers now, or a standard pack still within
// its validity with classes remaining. The unlimited week wins when both
// exist.
func (r *repository) GetActiveForUser(ctx context.Context, userID int, now time.Time) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		  AND is_active = true
		  AND payment_status = 'paid'
		  AND (
		        (package_type = 'unlimited_week' AND week_start <= $2 AND week_end >= $2)
		     OR (package_type <> 'unlimited_week' AND valid_until >= $2 AND classes_remaining > 0)
		  )
		ORDER BY (package_type = 'unlimited_week') DESC, created_at DESC
		LIMIT 1
	`, userID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNoActivePackage
		}
		return nil, err
	}

	return sub, nil
}

// Activate is the idempotent payment-confirmation transition. The conditional
// update is the guard: only one caller can move the row out of pending, so a
// replayed confirmation never double-credits.
func (r *repository) Activate(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET payment_status = 'paid', is_active = true, updated_at = NOW()
		WHERE id = $1 AND payment_status = 'pending'
	`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
