package reservation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

const reservationColumns = `id, user_id, scheduled_class_id, subscription_id, status, bike_number, can_refund, cancellation_reason, cancelled_at, created_at`

const detailColumns = `r.id, r.user_id, r.scheduled_class_id, r.subscription_id, r.status, r.bike_number, r.can_refund, r.cancellation_reason, r.cancelled_at, r.created_at,
	c.name AS class_name, c.instructor AS class_instructor, c.class_date AS class_date, c.start_time AS class_start_time,
	u.name AS user_name, u.email AS user_email`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateConfirmed books a spot atomically. The class decrement and the
// subscription counter update both carry their own guard, so a full class
// or an exhausted pack rolls the whole booking back.
func (r *repository) CreateConfirmed(ctx context.Context, userID, classID int, subscriptionID, bikeNumber *int) (*Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE scheduled_classes
		 SET available_spots = available_spots - 1
		 WHERE id = $1 AND status = 'scheduled' AND available_spots > 0`,
		classID,
	)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.ErrClassFull
	}

	if subscriptionID != nil {
		res, err = tx.ExecContext(ctx,
			`UPDATE subscriptions
			 SET classes_used = classes_used + 1,
			     classes_remaining = classes_remaining - 1,
			     updated_at = NOW()
			 WHERE id = $1 AND classes_remaining > 0`,
			*subscriptionID,
		)
		if err != nil {
			return nil, err
		}
		rows, err = res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, apperrors.ErrWeeklyLimitExceeded
		}
	}

	rsv := &Reservation{}
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO reservations (user_id, scheduled_class_id, subscription_id, status, bike_number)
		 VALUES ($1, $2, $3, 'confirmed', $4)
		 RETURNING `+reservationColumns,
		userID, classID, subscriptionID, bikeNumber,
	).StructScan(rsv)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rsv, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Reservation, error) {
	rsv := &Reservation{}
	err := r.db.GetContext(ctx, rsv,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rsv, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]ReservationWithDetails, error) {
	list := []ReservationWithDetails{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+detailColumns+`
		 FROM reservations r
		 JOIN scheduled_classes c ON c.id = r.scheduled_class_id
		 JOIN users u ON u.id = r.user_id
		 WHERE r.user_id = $1
		 ORDER BY c.class_date DESC, c.start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) ListByClass(ctx context.Context, classID int) ([]ReservationWithDetails, error) {
	list := []ReservationWithDetails{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+detailColumns+`
		 FROM reservations r
		 JOIN scheduled_classes c ON c.id = r.scheduled_class_id
		 JOIN users u ON u.id = r.user_id
		 WHERE r.scheduled_class_id = $1
		 ORDER BY r.created_at ASC`,
		classID,
	)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) CountConfirmedBySubscription(ctx context.Context, subscriptionID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM reservations WHERE subscription_id = $1 AND status = 'confirmed'`,
		subscriptionID,
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CountConfirmedBySubscriptionOnDate(ctx context.Context, subscriptionID int, date time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*)
		 FROM reservations r
		 JOIN scheduled_classes c ON c.id = r.scheduled_class_id
		 WHERE r.subscription_id = $1 AND r.status = 'confirmed' AND c.class_date = $2`,
		subscriptionID, date.Format("2006-01-02"),
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) HasConfirmedForUserAndClass(ctx context.Context, userID, classID int) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM reservations
		 WHERE user_id = $1 AND scheduled_class_id = $2 AND status = 'confirmed'`,
		userID, classID,
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindNextConfirmed returns the chronologically next confirmed reservation on
// the same subscription, strictly after the given class date and start time.
func (r *repository) FindNextConfirmed(ctx context.Context, subscriptionID int, afterDate time.Time, afterTime string, excludeID int) (*Reservation, error) {
	rsv := &Reservation{}
	err := r.db.QueryRowxContext(ctx,
		`SELECT `+reservationColumns+`
		 FROM (
		     SELECT r.*, c.class_date, c.start_time
		     FROM reservations r
		     JOIN scheduled_classes c ON c.id = r.scheduled_class_id
		     WHERE r.subscription_id = $1
		       AND r.status = 'confirmed'
		       AND r.id <> $2
		       AND (c.class_date > $3 OR (c.class_date = $3 AND c.start_time > $4))
		     ORDER BY c.class_date ASC, c.start_time ASC
		     LIMIT 1
		 ) AS next`,
		subscriptionID, excludeID, afterDate.Format("2006-01-02"), afterTime,
	).StructScan(rsv)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rsv, nil
}

// ApplyCancellation flips a confirmed reservation to cancelled and releases
// its spot. The status guard makes concurrent cancellations lose cleanly.
func (r *repository) ApplyCancellation(ctx context.Context, d CancellationDecision) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations
		 SET status = 'cancelled',
		     can_refund = $2,
		     cancellation_reason = $3,
		     cancelled_at = $4,
		     bike_number = NULL
		 WHERE id = $1 AND status = 'confirmed'`,
		d.ReservationID, d.CanRefund, d.Reason, d.CancelledAt,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrAlreadyCancelled
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE scheduled_classes
		 SET available_spots = LEAST(available_spots + 1, capacity)
		 WHERE id = $1`,
		d.ClassID,
	)
	if err != nil {
		return err
	}

	if d.SubscriptionID != nil && (d.DecrementUsed || d.RestoreRemaining) {
		query := `UPDATE subscriptions SET updated_at = NOW()`
		if d.DecrementUsed {
			query += `, classes_used = GREATEST(classes_used - 1, 0)`
		}
		if d.RestoreRemaining {
			query += `, classes_remaining = classes_remaining + 1`
		}
		query += ` WHERE id = $1`
		if _, err = tx.ExecContext(ctx, query, *d.SubscriptionID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ApplyCascade marks the missed reservation as a no-show, releases its spot,
// and, when the plan carries one, cancels the penalized reservation too. If
// the penalized reservation was cancelled concurrently only the no-show part
// of the plan lands.
func (r *repository) ApplyCascade(ctx context.Context, plan CascadePlan, now time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations
		 SET status = 'no_show', cancelled_at = $2
		 WHERE id = $1 AND status = 'confirmed'`,
		plan.MissedReservationID, now,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrAlreadyProcessed
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE scheduled_classes
		 SET available_spots = LEAST(available_spots + 1, capacity)
		 WHERE id = $1`,
		plan.MissedClassID,
	)
	if err != nil {
		return err
	}

	if plan.Cascaded() {
		res, err = tx.ExecContext(ctx,
			`UPDATE reservations
			 SET status = 'cancelled',
			     can_refund = FALSE,
			     cancellation_reason = $2,
			     cancelled_at = $3,
			     bike_number = NULL
			 WHERE id = $1 AND status = 'confirmed'`,
			*plan.PenalizedReservationID, plan.PenaltyReason, now,
		)
		if err != nil {
			return err
		}
		rows, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if rows > 0 {
			_, err = tx.ExecContext(ctx,
				`UPDATE scheduled_classes
				 SET available_spots = LEAST(available_spots + 1, capacity)
				 WHERE id = $1`,
				*plan.PenalizedClassID,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *repository) MarkAttended(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = 'attended' WHERE id = $1 AND status = 'confirmed'`,
		id,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrAlreadyProcessed
	}
	return nil
}
