package payment

import "context"

type Repository interface {
	RecordCompleted(ctx context.Context, userID, subscriptionID int, amountCents int64, method, providerReference string) (*Payment, error)
	GetByProviderReference(ctx context.Context, providerReference string) (*Payment, error)
	ListByUser(ctx context.Context, userID int) ([]Payment, error)
}
