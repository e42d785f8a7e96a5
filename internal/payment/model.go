package payment

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

const DefaultCurrency = "MXN"

type Payment struct {
	ID                int       `db:"id" json:"id"`
	UserID            int       `db:"user_id" json:"user_id"`
	SubscriptionID    int       `db:"subscription_id" json:"subscription_id"`
	AmountCents       int64     `db:"amount_cents" json:"amount_cents"`
	Currency          string    `db:"currency" json:"currency"`
	Method            string    `db:"method" json:"method"`
	ProviderReference string    `db:"provider_reference" json:"provider_reference"`
	Status            Status    `db:"status" json:"status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// ConfirmRequest is the provider callback payload. ProviderReference is the
// provider's charge id and the idempotency key for replays.
type ConfirmRequest struct {
	SubscriptionID    int    `json:"subscription_id" binding:"required"`
	AmountCents       int64  `json:"amount_cents" binding:"required,min=1"`
	Method            string `json:"method" binding:"required" example:"card"`
	ProviderReference string `json:"provider_reference" binding:"required" example:"ch_3NqK8w"`
}
