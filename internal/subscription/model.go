package subscription

import "time"

type PackageType string
type PaymentStatus string

const (
	TypeUnlimitedWeek PackageType = "unlimited_week"
	TypePack5         PackageType = "pack_5"
	TypePack10        PackageType = "pack_10"

	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Subscription is a purchased class package. For the unlimited week package
// WeekStart/WeekEnd bind it to one fixed Monday-Friday week; standard packs
// leave them NULL and expire via ValidUntil instead.
type Subscription struct {
	ID               int           `db:"id" json:"id"`
	UserID           int           `db:"user_id" json:"user_id"`
	PackageType      PackageType   `db:"package_type" json:"package_type"`
	PaymentStatus    PaymentStatus `db:"payment_status" json:"payment_status"`
	IsActive         bool          `db:"is_active" json:"is_active"`
	ClassesUsed      int           `db:"classes_used" json:"classes_used"`
	ClassesRemaining int           `db:"classes_remaining" json:"classes_remaining"`
	WeekStart        *time.Time    `db:"week_start" json:"week_start,omitempty"`
	WeekEnd          *time.Time    `db:"week_end" json:"week_end,omitempty"`
	ValidUntil       *time.Time    `db:"valid_until" json:"valid_until,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

func (s *Subscription) IsUnlimitedWeek() bool {
	return s.PackageType == TypeUnlimitedWeek
}

// IsExpired reports whether the subscription's validity window has passed.
func (s *Subscription) IsExpired(now time.Time) bool {
	if s.IsUnlimitedWeek() {
		return s.WeekEnd != nil && now.After(*s.WeekEnd)
	}
	return s.ValidUntil != nil && now.After(*s.ValidUntil)
}

// CoversInstant reports whether now falls within the subscription's week.
// Only meaningful for unlimited week subscriptions.
func (s *Subscription) CoversInstant(now time.Time) bool {
	if s.WeekStart == nil || s.WeekEnd == nil {
		return false
	}
	return !now.Before(*s.WeekStart) && !now.After(*s.WeekEnd)
}

type PurchaseWeekRequest struct {
	WeekStart string `json:"week_start" binding:"required" example:"2025-06-02"`
}

type PurchasePackRequest struct {
	PackageType string `json:"package_type" binding:"required" example:"pack_10"`
}
