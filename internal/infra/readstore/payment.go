package readstore

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (r *PaymentReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PaymentListItem, error) {
	const sql = `
		SELECT id, ticket_id, amount_cents, method, status, paid_at
		FROM payments
		WHERE owner_id = $1
		ORDER BY paid_at DESC, id
	`

	rows, err := r.db.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query payments by owner", err)
	}
	defer rows.Close()

	var items []*queries.PaymentListItem
	for rows.Next() {
		var item queries.PaymentListItem
		if err := rows.Scan(&item.ID, &item.TicketID, &item.AmountCents, &item.Method, &item.Status, &item.PaidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}

	return items, nil
}
