package readstore

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/pkg/pgconv"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightReadStore struct {
	db db.DBTX
}

func NewFlightReadStore(dbtx db.DBTX) *FlightReadStore {
	return &FlightReadStore{db: dbtx}
}

func (r *FlightReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.FlightSnapshot, error) {
	const sql = `
		SELECT id, origin, destination, economy_price_cents, vip_price_cents, departs_at
		FROM flights
		WHERE id = $1
	`

	var snap shared.FlightSnapshot
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.Origin, &snap.Destination,
		&snap.EconomyPriceCents, &snap.VIPPriceCents, &snap.DepartsAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find flight by ID", err)
	}

	return &snap, nil
}
