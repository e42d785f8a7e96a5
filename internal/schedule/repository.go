package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

type repository struct {
	db  *sqlx.DB
	loc *time.Location
}

func NewRepository(db *sqlx.DB, loc *time.Location) Repository {
	return &repository{db: db, loc: loc}
}

const classColumns = `id, name, instructor, class_date, start_time, duration_mins, capacity, available_spots, status, created_at`

func (r *repository) CreateClass(ctx context.Context, name, instructor string, classDate time.Time, startTime string, durationMins, capacity int) (*ScheduledClass, error) {
	class := &ScheduledClass{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO scheduled_classes (name, instructor, class_date, start_time, duration_mins, capacity, available_spots, status)
		VALUES ($1, $2, $3, $4, $5, $6, $6, 'scheduled')
		RETURNING `+classColumns+`
	`, name, instructor, classDate, startTime, durationMins, capacity).StructScan(class)
	if err != nil {
		return nil, err
	}

	if err := class.ComposeStartsAt(r.loc); err != nil {
		return nil, err
	}

	return class, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*ScheduledClass, error) {
	class := &ScheduledClass{}
	err := r.db.GetContext(ctx, class, `
		SELECT `+classColumns+`
		FROM scheduled_classes
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := class.ComposeStartsAt(r.loc); err != nil {
		return nil, err
	}

	return class, nil
}

func (r *repository) ListUpcoming(ctx context.Context, from time.Time) ([]ScheduledClass, error) {
	return r.list(ctx, `
		SELECT `+classColumns+`
		FROM scheduled_classes
		WHERE class_date >= $1 AND status = 'scheduled'
		ORDER BY class_date ASC, start_time ASC
	`, from)
}

func (r *repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]ScheduledClass, error) {
	return r.list(ctx, `
		SELECT `+classColumns+`
		FROM scheduled_classes
		WHERE class_date >= $1 AND class_date <= $2
		ORDER BY class_date ASC, start_time ASC
	`, from, to)
}

func (r *repository) list(ctx context.Context, query string, args ...interface{}) ([]ScheduledClass, error) {
	classes := []ScheduledClass{}
	err := r.db.SelectContext(ctx, &classes, query, args...)
	if err != nil {
		return nil, err
	}

	for i := range classes {
		if err := classes[i].ComposeStartsAt(r.loc); err != nil {
			return nil, err
		}
	}

	return classes, nil
}
