package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

const paymentColumns = `id, user_id, subscription_id, amount_cents, currency, method, provider_reference, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// RecordCompleted inserts the confirmed payment. The unique constraint on
// provider_reference makes a replayed callback land on the conflict branch
// instead of recording twice.
func (r *repository) RecordCompleted(ctx context.Context, userID, subscriptionID int, amountCents int64, method, providerReference string) (*Payment, error) {
	p := &Payment{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO payments (user_id, subscription_id, amount_cents, currency, method, provider_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'completed')
		ON CONFLICT (provider_reference) DO NOTHING
		RETURNING `+paymentColumns+`
	`, userID, subscriptionID, amountCents, DefaultCurrency, method, providerReference).StructScan(p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAlreadyProcessed
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetByProviderReference(ctx context.Context, providerReference string) (*Payment, error) {
	p := &Payment{}
	err := r.db.GetContext(ctx, p, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE provider_reference = $1
	`, providerReference)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
