package queries

import (
	"context"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentListItem, error)
}

type PaymentReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentListItem, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentListItem, error) {
	return q.store.FindByOwner(ctx, ownerID)
}
