package repository

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

// Remove deletes the pending-reservation entry for a ticket. Zero rows deleted
// is fine; cart entries can also disappear through independent expiry.
func (r *CartRepository) Remove(ctx context.Context, ticketID uuid.UUID) error {
	const sql = `DELETE FROM cart_entries WHERE ticket_id = $1`

	if _, err := r.db.Exec(ctx, sql, ticketID); err != nil {
		return infra.WrapRepoErr("failed to remove cart entry", err)
	}

	return nil
}
