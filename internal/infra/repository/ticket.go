package repository

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"

	"github.com/google/uuid"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

// MarkPaid is conditional on the pending status so a ticket already settled by
// a concurrent purchase (for example the companion leg of the same pairing key)
// aborts this transaction instead of being flipped twice.
func (r *TicketRepository) MarkPaid(ctx context.Context, ticketID uuid.UUID) error {
	const sql = `
		UPDATE tickets
		SET status = 'paid', updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := r.db.Exec(ctx, sql, ticketID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark ticket paid", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket is not pending", nil, infra.KindConflict)
	}

	return nil
}
