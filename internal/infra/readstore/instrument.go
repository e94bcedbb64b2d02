package readstore

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/pkg/pgconv"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type InstrumentReadStore struct {
	db db.DBTX
}

func NewInstrumentReadStore(dbtx db.DBTX) *InstrumentReadStore {
	return &InstrumentReadStore{db: dbtx}
}

func (r *InstrumentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.InstrumentSnapshot, error) {
	const sql = `
		SELECT id, owner_id, kind, balance_cents, expires_at
		FROM payment_instruments
		WHERE id = $1
	`

	var snap shared.InstrumentSnapshot
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Kind, &snap.BalanceCents, &snap.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment instrument not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment instrument by ID", err)
	}

	return &snap, nil
}
