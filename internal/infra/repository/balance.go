package repository

import (
	"context"

	"skybook/internal/domain/payment"
	"skybook/internal/infra"
	"skybook/internal/infra/db"

	"github.com/google/uuid"
)

type BalanceRepository struct {
	db db.DBTX
}

func NewBalanceRepository(dbtx db.DBTX) *BalanceRepository {
	return &BalanceRepository{db: dbtx}
}

// Debit re-checks balance >= amount at the moment of mutation. The condition in
// the WHERE clause closes the check-then-act window between Validating and
// Committing: two concurrent purchases against one instrument cannot both pass.
func (r *BalanceRepository) Debit(ctx context.Context, instrumentID uuid.UUID, amount payment.Money) error {
	const sql = `
		UPDATE payment_instruments
		SET balance_cents = balance_cents - $2, updated_at = now()
		WHERE id = $1 AND balance_cents >= $2
	`

	tag, err := r.db.Exec(ctx, sql, instrumentID, amount.Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to debit instrument", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("balance no longer covers amount", nil, infra.KindInsufficientFunds)
	}

	return nil
}
