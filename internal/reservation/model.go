package reservation

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusAttended  Status = "attended"
)

// Terminal reports whether a reservation in this status can no longer
// transition.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusNoShow || s == StatusAttended
}

type Reservation struct {
	ID                 int        `db:"id" json:"id"`
	UserID             int        `db:"user_id" json:"user_id"`
	ScheduledClassID   int        `db:"scheduled_class_id" json:"scheduled_class_id"`
	SubscriptionID     *int       `db:"subscription_id" json:"subscription_id,omitempty"`
	Status             Status     `db:"status" json:"status"`
	BikeNumber         *int       `db:"bike_number" json:"bike_number,omitempty"`
	CanRefund          bool       `db:"can_refund" json:"can_refund"`
	CancellationReason *string    `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

type ReservationWithDetails struct {
	Reservation
	ClassName      string    `db:"class_name" json:"class_name"`
	ClassInstructor string   `db:"class_instructor" json:"class_instructor"`
	ClassDate      time.Time `db:"class_date" json:"class_date"`
	ClassStartTime string    `db:"class_start_time" json:"class_start_time"`
	UserName       string    `db:"user_name" json:"user_name"`
	UserEmail      string    `db:"user_email" json:"user_email"`
}

type BookRequest struct {
	ClassID    int  `json:"class_id" binding:"required"`
	BikeNumber *int `json:"bike_number,omitempty" binding:"omitempty,min=1,max=40"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}
