package repository

import (
	"context"
	"errors"

	"skybook/internal/domain/payment"
	"skybook/internal/infra"
	"skybook/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// Record appends one ledger entry. payments.ticket_id is unique, so a second
// record for the same ticket surfaces as a duplicate-key error.
func (r *PaymentRepository) Record(ctx context.Context, rec *payment.Record) error {
	const sql = `
		INSERT INTO payments (id, owner_id, ticket_id, amount_cents, method, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, sql,
		rec.ID(), rec.OwnerID(), rec.TicketID(),
		rec.Amount().Cents(), rec.Method().String(), rec.Status(), rec.PaidAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("payment already recorded for ticket", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr("payment references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to record payment", err)
	}

	return nil
}
