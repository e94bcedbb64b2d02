package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type TicketReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	return q.store.FindViewByID(ctx, id)
}
